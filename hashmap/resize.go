package hashmap

// nextCapacity 根据负载因子计算新的容量，返回0表示无需调整
func (hm *HashMap) nextCapacity() int {
	capacity := len(hm.buckets)
	load := hm.LoadFactor()

	switch {
	case load >= growLoadFactor:
		if capacity >= hm.option.maxCapacity {
			return 0
		}
		return min(capacity*2, hm.option.maxCapacity)
	case load <= shrinkLoadFactor && capacity > hm.floor:
		return max(hm.floor, capacity/2)
	}
	return 0
}

// rehash 扩容或缩容，并将所有节点重新分配到新的桶中
func (hm *HashMap) rehash() {
	capacity := hm.nextCapacity()
	if capacity == 0 {
		return
	}

	from := len(hm.buckets)
	// 利用一个临时的表，重新赋值
	temp := HashMap{floor: hm.floor, option: hm.option}
	temp.init(capacity, hm.count)
	for _, head := range hm.buckets {
		for idx := head; idx != nilIndex; idx = hm.arena.entries[idx].next {
			e := hm.arena.entries[idx]
			bucket := temp.bucketFor(e.key)
			temp.buckets.push(&temp.arena, bucket, e.key, e.val)
			temp.mark(bucket)
			temp.count++
		}
	}

	// 旧的arena与空闲链表随之丢弃，rebuild是唯一的压缩时机
	hm.buckets = temp.buckets
	hm.arena = temp.arena
	hm.occupied = temp.occupied
	hm.count = temp.count

	if hm.option.onResize != nil {
		hm.option.onResize(from, capacity)
	}
}
