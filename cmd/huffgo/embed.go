// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/internal/xlog"
	"github.com/ulikunitz/huff/stego"
)

const embedUsageStr = `huffgo embed [options] <text>

Encodes text with a Huffman code and hides the encoded payload in the
low bits of the cover image. The output is always written as PNG
because a lossy format would destroy the payload.

  -h, --help         give this help
  -i, --image FILE   cover image (PNG, JPEG or BMP); required
  -o, --output FILE  output image; default is the cover image name
                     with the suffix _huff.png
  -f, --force        force overwrite of the output file
  -q, --quiet        suppress all warnings
  -v, --verbose      verbose mode
`

func embedUsage(w io.Writer) {
	fmt.Fprint(w, embedUsageStr)
}

// outputName derives the default output file name from the cover
// image path.
func outputName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_huff.png"
}

func embed() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { embedUsage(os.Stderr); os.Exit(1) }
	var (
		help    = pflag.BoolP("help", "h", false, "")
		image   = pflag.StringP("image", "i", "", "")
		output  = pflag.StringP("output", "o", "", "")
		force   = pflag.BoolP("force", "f", false, "")
		quiet   = pflag.BoolP("quiet", "q", false, "")
		verbose = pflag.BoolP("verbose", "v", false, "")
	)
	pflag.Parse()

	if *help {
		embedUsage(os.Stdout)
		os.Exit(0)
	}
	switch {
	case *quiet:
		xlog.SetVerbosity(xlog.Quiet)
	case *verbose:
		xlog.SetVerbosity(xlog.DebugLevel)
	}
	if *image == "" {
		log.Fatal("option -i with the cover image is required")
	}
	if pflag.NArg() != 1 {
		embedUsage(os.Stderr)
		os.Exit(1)
	}
	text := pflag.Arg(0)

	img, err := stego.DecodeFile(*image)
	if err != nil {
		log.Fatal(userError(err))
	}
	xlog.Debugf("cover image %s, capacity %d bytes",
		*image, stego.Capacity(img.Bounds()))

	e, err := huff.Encode(text)
	if err != nil {
		log.Fatal(err)
	}
	p, err := e.Payload()
	if err != nil {
		log.Fatal(err)
	}
	xlog.Debugf("payload %d bytes", len(p))

	out, err := stego.Embed(img, p)
	if err != nil {
		log.Fatal(err)
	}

	name := *output
	if name == "" {
		name = outputName(*image)
	}
	if _, err = os.Stat(name); !os.IsNotExist(err) && !*force {
		log.Fatal(&userPathError{
			Path: name, Err: errors.New("file exists")})
	}
	if err = stego.EncodeFile(name, out); err != nil {
		log.Fatal(userError(err))
	}
	if !*quiet {
		fmt.Printf("%s: %d payload bytes, space saving %.2f%%\n",
			name, len(p), e.Ratio(len(text)))
	}
}
