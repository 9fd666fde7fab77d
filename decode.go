package huff

import (
	"errors"
	"strings"
)

// ErrNoCodes indicates a decode attempt without any code table entry.
var ErrNoCodes = errors.New("huff: no codes provided")

// ErrIncompleteCode indicates that the bit string ended in the middle
// of a code word. Decode reports it together with the text decoded up
// to that point; callers may treat it as a warning.
var ErrIncompleteCode = errors.New("huff: incomplete code at end")

// Decode decodes the bit string using the code table. The bits
// consumed since the last match are compared against the table after
// every bit; on a match the symbol is emitted and matching restarts.
// Since tables produced by Encode are prefix-free, a valid bit string
// has exactly one parse and no backtracking is needed.
//
// An empty bit string is rejected with ErrEmptyInput, an empty table
// with ErrNoCodes. Leftover bits that form no complete code yield the
// decoded text together with ErrIncompleteCode.
func Decode(bits string, codes CodeTable) (text string, err error) {
	if len(bits) == 0 {
		return "", ErrEmptyInput
	}
	if len(codes) == 0 {
		return "", ErrNoCodes
	}
	inv := codes.invert()

	var sb strings.Builder
	start := 0
	for i := 0; i < len(bits); i++ {
		if s, ok := inv[bits[start:i+1]]; ok {
			sb.WriteByte(byte(s))
			start = i + 1
		}
	}
	if start < len(bits) {
		return sb.String(), ErrIncompleteCode
	}
	return sb.String(), nil
}
