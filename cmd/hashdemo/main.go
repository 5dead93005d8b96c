// Command hashdemo fills a small hashmap with sample entries and prints it.
//
// Environment:
//
//	HASHDEMO_FLOOR   floor capacity of the map (default 10)
//	HASHDEMO_XXHASH  use the xxHash key fold instead of the base-31 polynomial
//	HASHDEMO_TRACE   log every resize
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/hongker/go-hashtable/hashmap"
)

var people = []struct {
	name string
	age  int
}{
	{"Alice", 25},
	{"Bob", 10},
	{"Charlie", 50},
	{"Dennis", 45},
	{"Eve", 30},
	{"Fiona", 40},
	{"Ginny", 20},
	{"Henry", 35},
}

func main() {
	var opts []hashmap.Option
	if env.Bool("HASHDEMO_XXHASH") {
		opts = append(opts, hashmap.WithKeyFold(hashmap.XXHash))
	}
	if env.Bool("HASHDEMO_TRACE") {
		opts = append(opts, hashmap.WithResizeHook(func(from, to int) {
			log.Printf("resize: %d -> %d buckets", from, to)
		}))
	}

	hm, err := hashmap.New(env.Int("HASHDEMO_FLOOR", 10), opts...)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}
	defer hm.Destroy()

	for _, p := range people {
		if err := hm.Put(p.name, p.age); err != nil {
			log.Fatalf("Failed to insert %s: %v", p.name, err)
		}
	}
	if err := hm.Traverse(os.Stdout); err != nil {
		log.Fatalf("Failed to traverse map: %v", err)
	}

	for i := 0; i < 17; i++ {
		age, _ := hm.Get("Bob")
		if err := hm.Put("Bob", age+1); err != nil {
			log.Fatalf("Failed to update Bob: %v", err)
		}
	}
	if err := hm.Traverse(os.Stdout); err != nil {
		log.Fatalf("Failed to traverse map: %v", err)
	}

	fmt.Println()
	if err := hm.Describe(os.Stdout); err != nil {
		log.Fatalf("Failed to describe map: %v", err)
	}
	st := hm.Stats()
	fmt.Printf("count=%d capacity=%d floor=%d used=%d longest=%d\n",
		st.Count, st.Capacity, st.Floor, st.UsedBuckets, st.LongestChain)
}
