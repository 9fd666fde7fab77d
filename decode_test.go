package huff

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	codes := CodeTable{'a': "0", 'r': "10", 'b': "111", 'c': "1100",
		'd': "1101"}
	const bits = "01111001100011010111100"
	text, err := Decode(bits, codes)
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if text != "abracadabra" {
		t.Errorf("Decode returned %q; want %q", text, "abracadabra")
	}
}

func TestDecodeTruncated(t *testing.T) {
	text, err := Decode("001", CodeTable{'a': "0"})
	if !errors.Is(err, ErrIncompleteCode) {
		t.Fatalf("Decode returned error %v; want %v",
			err, ErrIncompleteCode)
	}
	if text != "aa" {
		t.Errorf("Decode returned %q; want %q", text, "aa")
	}
}

func TestDecodeEmptyBits(t *testing.T) {
	_, err := Decode("", CodeTable{'a': "0"})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Decode returned error %v; want %v",
			err, ErrEmptyInput)
	}
}

func TestDecodeNoCodes(t *testing.T) {
	_, err := Decode("0101", nil)
	if !errors.Is(err, ErrNoCodes) {
		t.Fatalf("Decode returned error %v; want %v", err, ErrNoCodes)
	}
}

// TestDecodeForeignBytes checks that bytes that are not bits simply
// never match and end up in the truncation report.
func TestDecodeForeignBytes(t *testing.T) {
	text, err := Decode("0x1", CodeTable{'a': "0"})
	if !errors.Is(err, ErrIncompleteCode) {
		t.Fatalf("Decode returned error %v; want %v",
			err, ErrIncompleteCode)
	}
	if text != "a" {
		t.Errorf("Decode returned %q; want %q", text, "a")
	}
}

func TestDecodeSingleSymbol(t *testing.T) {
	text, err := Decode("0000", CodeTable{'a': "0"})
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if text != "aaaa" {
		t.Errorf("Decode returned %q; want %q", text, "aaaa")
	}
}
