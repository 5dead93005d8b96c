package hashmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Stats describes the shape of a HashMap.
type Stats struct {
	Capacity     int
	Floor        int
	Count        int
	LoadFactor   float64
	UsedBuckets  int // 非空桶数量
	LongestChain int
}

// Stats 统计当前桶的使用情况
func (hm *HashMap) Stats() Stats {
	st := Stats{
		Capacity:   len(hm.buckets),
		Floor:      hm.Floor(),
		Count:      hm.count,
		LoadFactor: hm.LoadFactor(),
	}
	if hm.occupied == nil {
		return st
	}
	used := hm.occupied.ToNums()
	st.UsedBuckets = len(used)
	for _, pos := range used {
		st.LongestChain = max(st.LongestChain, hm.buckets.chainLen(&hm.arena, int(pos)))
	}
	return st
}

// Describe writes one line per bucket, empty buckets included:
//
//	 0 | {Bob,10} -> {Eve,30}
//	 1 |
func (hm *HashMap) Describe(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, head := range hm.buckets {
		fmt.Fprintf(bw, "%2d | ", i)
		for idx := head; idx != nilIndex; idx = hm.arena.entries[idx].next {
			e := hm.arena.entries[idx]
			fmt.Fprintf(bw, "{%s,%d}", e.key, e.val)
			if e.next != nilIndex {
				bw.WriteString(" -> ")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Traverse writes every entry on one line followed by the load factor:
//
//	{ Alice:25 Bob:10 } : 0.20
func (hm *HashMap) Traverse(w io.Writer) error {
	_, err := io.WriteString(w, hm.String()+"\n")
	return err
}

func (hm *HashMap) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	hm.Range(func(key string, val int) bool {
		fmt.Fprintf(&sb, "%s:%d ", key, val)
		return true
	})
	fmt.Fprintf(&sb, "} : %.2f", hm.LoadFactor())
	return sb.String()
}
