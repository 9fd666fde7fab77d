// Command huffgo builds Huffman codes for short texts. It prints the
// encoded bit string together with the code table, decodes such a bit
// string again and can hide the encoded text in the low bits of an
// image.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const version = "0.5.1"

const usageStr = `huffgo <command> ...

huffgo encodes text with a Huffman code and decodes it again. The
encoded text can also be hidden in the low bits of an image.

  huffgo encode <text>                 -- encode text, print bits and codes
  huffgo decode <bits>                 -- decode bits, codes read from stdin
  huffgo embed [options] <text>        -- hide encoded text in an image
  huffgo extract [options] <image.png> -- recover hidden text from an image
  huffgo help                          -- print this message
  huffgo version                       -- print version information

Report bugs using <https://github.com/ulikunitz/huff/issues>.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func updateArgs(cmd string) {
	args := make([]string, 1, len(os.Args)-1)
	args[0] = "huffgo " + cmd
	os.Args = append(args, os.Args[2:]...)
}

func main() {
	log.SetPrefix("huffgo: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		usage(os.Stdout)
		os.Exit(0)
	case "version":
		fmt.Printf("huffgo %s\n", version)
		os.Exit(0)
	case "encode":
		encode()
	case "decode":
		decode()
	case "embed":
		updateArgs("embed")
		embed()
	case "extract":
		updateArgs("extract")
		extract()
	default:
		log.Printf("command %q not supported", os.Args[1])
		usage(os.Stderr)
		os.Exit(1)
	}
}
