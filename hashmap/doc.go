/*
Package hashmap provides a separately chained hash map from string keys to int
values that resizes itself by load factor.

Basic usage:

	hm, err := hashmap.New(10) // never shrinks below 10 buckets
	if err != nil {
		log.Fatal(err)
	}
	defer hm.Destroy()

	hm.Put("Alice", 25)
	if v, ok := hm.Get("Alice"); ok {
		fmt.Println(v)
	}

Implementation details:

Each bucket heads a singly linked chain of entries. New keys are pushed to the
front of their chain, so the most recently inserted key in a bucket is found
first. Entries live in a single arena slice and chains link them by index.

The bucket of a key is chosen by Fibonacci hashing: the key bytes are folded
into a uint32 with a base-31 polynomial, multiplied by (√5-1)/2, and the
fractional part of the product is scaled to the capacity.

After every Put and every Remove, including an update of an existing key and
a Remove of an absent key, the load factor count/capacity is checked. At 0.75
or above the capacity doubles; at 0.25 or below it halves, but never below the
floor given to New. Any change rebuilds the whole table, so a single call can
cost time proportional to the number of entries.

A HashMap is not safe for concurrent use.
*/
package hashmap
