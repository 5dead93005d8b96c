package hashmap

import (
	"errors"

	"github.com/hongker/go-hashtable/bitarray"
)

const (
	growLoadFactor   = 0.75 // 负载因子上限，达到后扩容
	shrinkLoadFactor = 0.25 // 负载因子下限，达到后缩容

	// MaxCapacity is the largest bucket count a HashMap will grow to.
	MaxCapacity = 1 << 30
)

var (
	// ErrInvalidCapacity is returned by New for a floor capacity outside
	// [1, max capacity].
	ErrInvalidCapacity = errors.New("hashmap: invalid capacity")
	// ErrDestroyed is returned by mutators called after Destroy.
	ErrDestroyed = errors.New("hashmap: map has been destroyed")
)

// HashMap maps string keys to int values using separate chaining. Capacity
// doubles when the load factor reaches 0.75 and halves, never below the
// floor given to New, when it drops to 0.25.
//
// The zero HashMap is an empty map with floor 1; its buckets are allocated
// by the first Put or Remove. A HashMap is not safe for concurrent use.
type HashMap struct {
	floor    int                   // 最小容量，缩容不会低于该值
	count    int                   // 总数量
	buckets  buckets               // 桶
	arena    arena                 // 节点存储
	occupied *bitarray.BitmapArray // 非空桶位图

	destroyed bool
	option    option
}

// New 初始化，floor为最小容量
func New(floor int, opts ...Option) (*HashMap, error) {
	o := defaultOption()
	for _, opt := range opts {
		opt(&o)
	}
	if floor < 1 || floor > o.maxCapacity {
		return nil, ErrInvalidCapacity
	}

	hm := &HashMap{floor: floor, option: o}
	hm.init(floor, 0)
	return hm, nil
}

// init 分配指定容量的桶
func (hm *HashMap) init(capacity, hint int) {
	hm.buckets = newBuckets(capacity)
	hm.arena = newArena(hint)
	hm.occupied = bitarray.NewBitmapArray(uint64(capacity))
	hm.count = 0
}

// lazyInit 零值HashMap在首次写入时按floor=1初始化
func (hm *HashMap) lazyInit() {
	if len(hm.buckets) > 0 || hm.destroyed {
		return
	}
	if hm.option.fold == nil {
		hm.option = defaultOption()
	}
	hm.floor = 1
	hm.init(1, 0)
}

// mark 标记非空桶。bucket总是小于容量，而位图按容量分配，所以Set不会出错
func (hm *HashMap) mark(bucket int) {
	_ = hm.occupied.Set(uint64(bucket))
}

func (hm *HashMap) bucketFor(key string) int {
	return index(hm.option.fold(key), len(hm.buckets))
}

// Len returns the number of entries.
func (hm *HashMap) Len() int {
	return hm.count
}

// Cap returns the current number of buckets.
func (hm *HashMap) Cap() int {
	return len(hm.buckets)
}

// Floor returns the minimum capacity the map never shrinks below.
func (hm *HashMap) Floor() int {
	return max(hm.floor, 1)
}

// LoadFactor returns Len()/Cap(), or 0 for a destroyed map.
func (hm *HashMap) LoadFactor() float64 {
	if len(hm.buckets) == 0 {
		return 0
	}
	return float64(hm.count) / float64(len(hm.buckets))
}

// Contains 判断key是否存在
func (hm *HashMap) Contains(key string) bool {
	_, ok := hm.Get(key)
	return ok
}

// Get 查询，返回值以及是否存在
func (hm *HashMap) Get(key string) (int, bool) {
	if len(hm.buckets) == 0 {
		return 0, false
	}
	idx, _ := hm.buckets.find(&hm.arena, hm.bucketFor(key), key)
	if idx == nilIndex {
		return 0, false
	}
	return hm.arena.entries[idx].val, true
}

// Put 赋值，key已存在时覆盖val
func (hm *HashMap) Put(key string, val int) error {
	if hm.destroyed {
		return ErrDestroyed
	}
	hm.lazyInit()

	bucket := hm.bucketFor(key)
	if idx, _ := hm.buckets.find(&hm.arena, bucket, key); idx != nilIndex {
		hm.arena.entries[idx].val = val
	} else {
		hm.buckets.push(&hm.arena, bucket, cloneKey(key), val)
		hm.mark(bucket)
		hm.count++
	}

	// 无论是否新增节点，都需要判断负载因子
	hm.rehash()
	return nil
}

// Remove 删除key，key不存在时同样会判断是否需要缩容
func (hm *HashMap) Remove(key string) error {
	if hm.destroyed {
		return ErrDestroyed
	}
	hm.lazyInit()

	bucket := hm.bucketFor(key)
	if idx, prev := hm.buckets.find(&hm.arena, bucket, key); idx != nilIndex {
		if hm.buckets.unlink(&hm.arena, bucket, idx, prev) {
			hm.occupied.Clear(uint64(bucket))
		}
		hm.count--
	}

	hm.rehash()
	return nil
}

// Clear removes every entry. Capacity and floor are unchanged.
func (hm *HashMap) Clear() {
	if len(hm.buckets) == 0 {
		return
	}
	for i := range hm.buckets {
		hm.buckets[i] = nilIndex
	}
	hm.arena.reset()
	hm.occupied.Reset()
	hm.count = 0
}

// Destroy releases every entry and the bucket array. The map is inert
// afterwards: Put, Remove and Clone return ErrDestroyed and readers see an
// empty map with zero capacity.
func (hm *HashMap) Destroy() {
	hm.Clear()
	hm.buckets = nil
	hm.arena = arena{free: nilIndex}
	hm.occupied = bitarray.NewBitmapArray(0)
	hm.destroyed = true
}

// Clone returns a deep copy. The two maps share no entries, so mutating or
// destroying one never affects the other.
func (hm *HashMap) Clone() (*HashMap, error) {
	if hm.destroyed {
		return nil, ErrDestroyed
	}
	if len(hm.buckets) == 0 {
		return &HashMap{}, nil
	}

	c := &HashMap{floor: hm.floor, option: hm.option}
	c.init(len(hm.buckets), hm.count)
	// 保持与原表相同的链表顺序：逆序遍历每条链再头插
	for bucket, head := range hm.buckets {
		var chain []int
		for idx := head; idx != nilIndex; idx = hm.arena.entries[idx].next {
			chain = append(chain, idx)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			e := hm.arena.entries[chain[i]]
			c.buckets.push(&c.arena, bucket, cloneKey(e.key), e.val)
		}
		if len(chain) > 0 {
			c.mark(bucket)
		}
	}
	c.count = hm.count
	return c, nil
}
