package hashmap

import "strings"

// nilIndex marks an empty bucket or the end of a chain.
const nilIndex = -1

// entry 链表节点，next为同一个桶内下一个节点在arena中的下标
type entry struct {
	key  string
	val  int
	next int
}

// arena owns every entry of a table. Chains link entries by index, so
// unlinking or rebuilding can never leave a dangling reference.
type arena struct {
	entries []entry
	free    int // 空闲链表头
}

func newArena(hint int) arena {
	return arena{entries: make([]entry, 0, hint), free: nilIndex}
}

// alloc 分配一个节点，优先复用空闲链表中的位置
func (a *arena) alloc(key string, val, next int) int {
	e := entry{key: key, val: val, next: next}
	if a.free != nilIndex {
		idx := a.free
		a.free = a.entries[idx].next
		a.entries[idx] = e
		return idx
	}
	a.entries = append(a.entries, e)
	return len(a.entries) - 1
}

// release 回收节点，清空key以便释放字符串内存
func (a *arena) release(idx int) {
	a.entries[idx] = entry{next: a.free}
	a.free = idx
}

func (a *arena) reset() {
	a.entries = a.entries[:0]
	a.free = nilIndex
}

// buckets holds the head index of each chain.
type buckets []int

func newBuckets(capacity int) buckets {
	b := make(buckets, capacity)
	for i := range b {
		b[i] = nilIndex
	}
	return b
}

// find 在桶内查找key，返回节点下标以及前驱下标
func (b buckets) find(a *arena, bucket int, key string) (idx, prev int) {
	prev = nilIndex
	for idx = b[bucket]; idx != nilIndex; idx = a.entries[idx].next {
		if a.entries[idx].key == key {
			return idx, prev
		}
		prev = idx
	}
	return nilIndex, prev
}

// push 在链表头部插入新节点，新插入的节点最先被找到
func (b buckets) push(a *arena, bucket int, key string, val int) {
	b[bucket] = a.alloc(key, val, b[bucket])
}

// unlink 将节点从链表中摘除并回收，返回桶是否变为空
func (b buckets) unlink(a *arena, bucket, idx, prev int) bool {
	next := a.entries[idx].next
	if prev == nilIndex {
		b[bucket] = next
	} else {
		a.entries[prev].next = next
	}
	a.release(idx)
	return b[bucket] == nilIndex
}

// chainLen 统计桶内节点数量
func (b buckets) chainLen(a *arena, bucket int) int {
	n := 0
	for idx := b[bucket]; idx != nilIndex; idx = a.entries[idx].next {
		n++
	}
	return n
}

// cloneKey gives the table its own copy of the caller's key bytes.
func cloneKey(key string) string {
	return strings.Clone(key)
}
