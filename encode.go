// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package huff

import "strings"

// Encoding is the result of encoding a text: the encoded bit string
// and the code table required to decode it. The bit string is not
// self-describing; the table must travel with it.
type Encoding struct {
	Bits  string
	Codes CodeTable
}

// Encode derives a Huffman code from the byte frequencies of the text
// and encodes it. The bit string of the returned Encoding concatenates
// the codes of all text bytes in input order. The empty text is
// rejected with ErrEmptyInput.
//
// The tree used to derive the code is local to the call; only the code
// table survives.
func Encode(text string) (e *Encoding, err error) {
	f, err := CountFrequencies(text)
	if err != nil {
		return nil, err
	}
	codes := newCodeTable(buildTree(f))

	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		sb.WriteString(codes[Symbol(text[i])])
	}
	return &Encoding{Bits: sb.String(), Codes: codes}, nil
}

// Ratio returns the space saved by encoding a text of n bytes into the
// bit string, as a percentage. Each input byte counts as eight bits.
func (e *Encoding) Ratio(n int) float64 {
	if n <= 0 {
		return 0
	}
	return (1 - float64(len(e.Bits))/float64(8*n)) * 100
}
