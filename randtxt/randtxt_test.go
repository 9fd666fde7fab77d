// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package randtxt

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
)

func TestReader(t *testing.T) {
	lr := io.LimitReader(NewReader(rand.NewSource(13)), 195)
	p, err := io.ReadAll(lr)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if len(p) != 195 {
		t.Fatalf("read %d bytes; want %d", len(p), 195)
	}
	t.Logf("%s", p)
	for i, c := range p {
		if c != ' ' && !('A' <= c && c <= 'Z') {
			t.Fatalf("byte %d is %q; want letter or space", i, c)
		}
	}
}

func TestReaderDeterministic(t *testing.T) {
	a := make([]byte, 100)
	b := make([]byte, 100)
	if _, err := NewReader(rand.NewSource(7)).Read(a); err != nil {
		t.Fatalf("Read error %s", err)
	}
	if _, err := NewReader(rand.NewSource(7)).Read(b); err != nil {
		t.Fatalf("Read error %s", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("readers with equal sources differ:\n%s\n%s", a, b)
	}
}

func TestCDF(t *testing.T) {
	if last := lcdf[len(lcdf)-1].p; last != 1.0 {
		t.Fatalf("letter cdf ends at %g; want 1", last)
	}
	for i := 1; i < len(lcdf); i++ {
		if lcdf[i].p < lcdf[i-1].p {
			t.Fatalf("letter cdf not monotone at index %d", i)
		}
	}
	if c := lcdf[lcdf.SearchProb(0)].c; c != 'A' {
		t.Fatalf("SearchProb(0) selects %q; want %q", c, 'A')
	}
	if last := wcdf[len(wcdf)-1]; last != 1.0 {
		t.Fatalf("word length cdf ends at %g; want 1", last)
	}
}
