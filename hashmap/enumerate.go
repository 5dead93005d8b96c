package hashmap

// Item is a key/value pair copied out of a HashMap.
type Item struct {
	Key   string `msg:"key"`
	Value int    `msg:"value"`
}

// Range calls fn for every entry, in bucket order and most recent first
// within a bucket, until fn returns false. fn must not modify the map.
func (hm *HashMap) Range(fn func(key string, val int) bool) {
	if hm.occupied == nil || hm.occupied.Empty() {
		return
	}
	// 通过位图跳过空桶
	for pos, ok := hm.occupied.Next(0); ok; pos, ok = hm.occupied.Next(pos + 1) {
		for idx := hm.buckets[pos]; idx != nilIndex; idx = hm.arena.entries[idx].next {
			e := &hm.arena.entries[idx]
			if !fn(e.key, e.val) {
				return
			}
		}
	}
}

// Keys returns a snapshot of all keys. The order matches Values and Items
// but is otherwise unspecified and changes across mutations.
func (hm *HashMap) Keys() []string {
	keys := make([]string, 0, hm.count)
	hm.Range(func(key string, _ int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns a snapshot of all values, in the same order as Keys.
func (hm *HashMap) Values() []int {
	values := make([]int, 0, hm.count)
	hm.Range(func(_ string, val int) bool {
		values = append(values, val)
		return true
	})
	return values
}

// Items returns a snapshot of all entries, in the same order as Keys.
func (hm *HashMap) Items() []Item {
	items := make([]Item, 0, hm.count)
	hm.Range(func(key string, val int) bool {
		items = append(items, Item{Key: key, Value: val})
		return true
	})
	return items
}
