package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/internal/xlog"
	"github.com/ulikunitz/huff/stego"
)

const extractUsageStr = `huffgo extract [options] <image.png>

Recovers text hidden by huffgo embed from the low bits of the image
and decodes it. The text is printed to standard output without a
trailing newline.

  -h, --help     give this help
  -q, --quiet    suppress all warnings
  -v, --verbose  verbose mode
`

func extractUsage(w io.Writer) {
	fmt.Fprint(w, extractUsageStr)
}

func extract() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { extractUsage(os.Stderr); os.Exit(1) }
	var (
		help    = pflag.BoolP("help", "h", false, "")
		quiet   = pflag.BoolP("quiet", "q", false, "")
		verbose = pflag.BoolP("verbose", "v", false, "")
	)
	pflag.Parse()

	if *help {
		extractUsage(os.Stdout)
		os.Exit(0)
	}
	switch {
	case *quiet:
		xlog.SetVerbosity(xlog.Quiet)
	case *verbose:
		xlog.SetVerbosity(xlog.DebugLevel)
	}
	if pflag.NArg() != 1 {
		extractUsage(os.Stderr)
		os.Exit(1)
	}

	img, err := stego.DecodeFile(pflag.Arg(0))
	if err != nil {
		log.Fatal(userError(err))
	}
	p, err := stego.Extract(img)
	if err != nil {
		log.Fatal(err)
	}
	xlog.Debugf("payload %d bytes", len(p))

	e, err := huff.ParsePayload(p)
	if err != nil {
		log.Fatal(err)
	}
	text, err := huff.Decode(e.Bits, e.Codes)
	if err != nil {
		if !errors.Is(err, huff.ErrIncompleteCode) {
			log.Fatal(err)
		}
		xlog.Warn("incomplete code at end")
	}
	fmt.Print(text)
}
