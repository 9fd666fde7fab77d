package huff

import "errors"

// Symbol is a single byte value from the input alphabet.
type Symbol byte

// FreqTable maps each distinct symbol of a text to the number of its
// occurrences. The counts of all symbols sum up to the length of the
// text.
type FreqTable map[Symbol]int

// ErrEmptyInput indicates an empty text or bit string argument.
var ErrEmptyInput = errors.New("huff: empty input")

// CountFrequencies computes the frequency table for the text. The
// empty text is rejected with ErrEmptyInput.
func CountFrequencies(text string) (f FreqTable, err error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	f = make(FreqTable)
	for i := 0; i < len(text); i++ {
		f[Symbol(text[i])]++
	}
	return f, nil
}
