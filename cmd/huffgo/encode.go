package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/ulikunitz/huff"
)

// printCodes writes the code table with one entry per line in
// ascending symbol order.
func printCodes(w io.Writer, codes huff.CodeTable) {
	syms := make([]int, 0, len(codes))
	for s := range codes {
		syms = append(syms, int(s))
	}
	sort.Ints(syms)
	for _, s := range syms {
		fmt.Fprintf(w, "%d %s\n", s, codes[huff.Symbol(s)])
	}
}

// encode handles the encode command. The first output line is the
// encoded bit string, the following lines list the code table.
func encode() {
	if len(os.Args) < 3 {
		usage(os.Stderr)
		os.Exit(1)
	}
	e, err := huff.Encode(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(e.Bits)
	printCodes(os.Stdout, e.Codes)
}
