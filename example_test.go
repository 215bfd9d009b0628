package bitmatch_test

import (
	"context"
	"fmt"

	"github.com/popov-nikita/bitmatch"
	"github.com/popov-nikita/bitmatch/blobstore"
)

func ExampleCompile() {
	// Nine significant bits of "AA8": 1010 1010 1
	pat, err := bitmatch.Compile("AA8", 9)
	if err != nil {
		panic(err)
	}

	offset, found := pat.Find([]byte{0xAA, 0xAA})
	fmt.Println(offset, found)
	// Output: 0 true
}

func ExamplePattern_Find() {
	pat, _ := bitmatch.Compile("F", 4)

	// 0xAF = 1010 1111: the first run of four ones starts at bit 4.
	offset, found := pat.Find([]byte{0xAF})
	fmt.Println(offset, found)
	// Output: 4 true
}

func ExamplePattern_FindInStore() {
	store := blobstore.NewMemoryStore()
	store.Put("a.bin", []byte{0x00, 0xAF})
	store.Put("b.bin", []byte{0xFF, 0xFF})

	pat, _ := bitmatch.Compile("AF", 8)

	results, err := pat.FindInStore(context.Background(), store, []string{"a.bin", "b.bin"})
	if err != nil {
		panic(err)
	}
	for _, r := range results {
		fmt.Println(r.Name, r.Offset, r.Found)
	}
	// Output:
	// a.bin 8 true
	// b.bin 0 false
}
