// Package randtxt provides a reader of random text with the letter
// statistics of English. The output serves as test input for codecs
// that exploit skewed symbol distributions.
package randtxt

import (
	"math/rand"
	"sort"
)

// prob associates a letter with a probability.
type prob struct {
	c byte
	p float64
}

// probs is a cumulative distribution over letters once cdf has been
// applied.
type probs []prob

// SearchProb returns the index of the first entry with a cumulative
// probability of at least p.
func (s probs) SearchProb(p float64) int {
	return sort.Search(len(s), func(k int) bool { return s[k].p >= p })
}

// cdf converts letter weights into a cumulative distribution. The
// weights need not sum up to one.
func cdf(weights probs) probs {
	sum := 0.0
	for _, w := range weights {
		sum += w.p
	}
	prs := make(probs, len(weights))
	x := 0.0
	for i, w := range weights {
		x += w.p / sum
		if x > 1.0 {
			x = 1.0
		}
		prs[i] = prob{w.c, x}
	}
	prs[len(prs)-1].p = 1.0
	return prs
}

// lengthCDF converts word length weights into a cumulative
// distribution, the first weight standing for length one.
func lengthCDF(weights []float64) []float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	cs := make([]float64, len(weights))
	x := 0.0
	for i, w := range weights {
		x += w / sum
		cs[i] = x
	}
	cs[len(cs)-1] = 1.0
	return cs
}

// englm1 holds the monogram frequencies of English text in percent.
var englm1 = probs{
	{'A', 8.167}, {'B', 1.492}, {'C', 2.782}, {'D', 4.253},
	{'E', 12.702}, {'F', 2.228}, {'G', 2.015}, {'H', 6.094},
	{'I', 6.966}, {'J', 0.153}, {'K', 0.772}, {'L', 4.025},
	{'M', 2.406}, {'N', 6.749}, {'O', 7.507}, {'P', 1.929},
	{'Q', 0.095}, {'R', 5.987}, {'S', 6.327}, {'T', 9.056},
	{'U', 2.758}, {'V', 0.978}, {'W', 2.360}, {'X', 0.150},
	{'Y', 1.974}, {'Z', 0.074},
}

// wordlens holds the distribution of English word lengths in percent,
// starting at length one.
var wordlens = []float64{3, 17, 21, 16, 11, 8, 8, 6, 4, 3, 2}

var (
	lcdf = cdf(englm1)
	wcdf = lengthCDF(wordlens)
)

func wordLen(rnd *rand.Rand) int {
	return 1 + sort.SearchFloat64s(wcdf, rnd.Float64())
}

// Reader produces random uppercase words with English letter
// statistics, separated by single spaces. Read never fails and fills
// the buffer completely.
type Reader struct {
	rnd  *rand.Rand
	left int
}

// NewReader creates a Reader drawing randomness from src. The output
// is deterministic for a fixed source.
func NewReader(src rand.Source) *Reader {
	rnd := rand.New(src)
	return &Reader{rnd: rnd, left: wordLen(rnd)}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for i := range p {
		if r.left == 0 {
			p[i] = ' '
			r.left = wordLen(r.rnd)
			continue
		}
		j := lcdf.SearchProb(r.rnd.Float64())
		p[i] = lcdf[j].c
		r.left--
	}
	return len(p), nil
}
