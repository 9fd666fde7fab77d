// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff_test

import (
	"fmt"
	"log"
	"sort"

	"github.com/ulikunitz/huff"
)

func ExampleEncode() {
	e, err := huff.Encode("abracadabra")
	if err != nil {
		log.Fatalf("huff.Encode error %s", err)
	}
	fmt.Println(e.Bits)
	syms := make([]int, 0, len(e.Codes))
	for s := range e.Codes {
		syms = append(syms, int(s))
	}
	sort.Ints(syms)
	for _, s := range syms {
		fmt.Printf("%d %s\n", s, e.Codes[huff.Symbol(s)])
	}
	// Output:
	// 01111001100011010111100
	// 97 0
	// 98 111
	// 99 1100
	// 100 1101
	// 114 10
}

func ExampleDecode() {
	codes := huff.CodeTable{
		'a': "0",
		'b': "111",
		'c': "1100",
		'd': "1101",
		'r': "10",
	}
	text, err := huff.Decode("01111001100011010111100", codes)
	if err != nil {
		log.Fatalf("huff.Decode error %s", err)
	}
	fmt.Println(text)
	// Output: abracadabra
}
