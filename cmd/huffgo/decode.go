package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ulikunitz/huff"
)

// readCodeTable parses symbol and code pairs until the input is
// exhausted or a token cannot be parsed.
func readCodeTable(r io.Reader) huff.CodeTable {
	codes := make(huff.CodeTable)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			break
		}
		if !sc.Scan() {
			break
		}
		codes[huff.Symbol(n)] = sc.Text()
	}
	return codes
}

// decode handles the decode command. The bit string argument is
// checked before the code table is read from standard input. The
// decoded text is printed without a trailing newline.
func decode() {
	if len(os.Args) < 3 {
		usage(os.Stderr)
		os.Exit(1)
	}
	bits := os.Args[2]
	if bits == "" {
		log.Fatal("empty bit string")
	}
	codes := readCodeTable(os.Stdin)
	text, err := huff.Decode(bits, codes)
	if err != nil {
		if !errors.Is(err, huff.ErrIncompleteCode) {
			log.Fatal(err)
		}
		log.Print("warning: incomplete code at end")
	}
	fmt.Print(text)
}
