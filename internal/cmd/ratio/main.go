// Command ratio measures the Huffman code over the Silesia corpus and
// compares the space saving against zstd.
package main

import (
	"fmt"
	"log"
	"testing"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/huff/internal/tuning"
	"github.com/ulikunitz/zdata"
)

// report summarizes the measurements over the whole corpus.
type report struct {
	Files     int
	Bytes     int64
	HuffBits  int64
	ZstdBytes int64
	HuffPct   float64
	ZstdPct   float64
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func encodeBenchmark(files []tuning.File) func(b *testing.B) {
	return func(b *testing.B) {
		b.SetBytes(tuning.Size(files))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for _, f := range files {
				if _, err := tuning.HuffBits(f.Data); err != nil {
					b.Fatalf("HuffBits(%s) error %s",
						f.Name, err)
				}
			}
		}
	}
}

func main() {
	log.SetPrefix("ratio: ")
	log.SetFlags(0)
	testing.Init()

	maxBytes := pflag.IntP("max-bytes", "m", 1<<20,
		"cap on the bytes measured per corpus file")
	bench := pflag.BoolP("bench", "b", false,
		"benchmark the encoder over the corpus")
	pflag.Parse()

	files, err := tuning.Files(zdata.Silesia)
	if err != nil {
		log.Fatalf("loading corpus: %s", err)
	}
	for i := range files {
		f := &files[i]
		if len(f.Data) > *maxBytes {
			f.Data = f.Data[:*maxBytes]
		}
	}

	rep := report{Files: len(files)}
	for _, f := range files {
		hb, err := tuning.HuffBits(f.Data)
		if err != nil {
			log.Fatalf("%s: %s", f.Name, err)
		}
		zn, err := tuning.ZstdSize(f.Data)
		if err != nil {
			log.Fatalf("%s: %s", f.Name, err)
		}
		n := int64(len(f.Data))
		rep.Bytes += n
		rep.HuffBits += hb
		rep.ZstdBytes += zn
		fmt.Printf("%-12s %9d B  huff %6.2f%%  zstd %6.2f%%\n",
			f.Name, n,
			100*(1-float64(hb)/float64(8*n)),
			100*(1-float64(zn)/float64(n)))
	}
	if rep.Bytes > 0 {
		rep.HuffPct = 100 *
			(1 - float64(rep.HuffBits)/float64(8*rep.Bytes))
		rep.ZstdPct = 100 *
			(1 - float64(rep.ZstdBytes)/float64(rep.Bytes))
	}
	fmt.Println()
	pretty.Println(rep)

	if *bench {
		result := testing.Benchmark(encodeBenchmark(files))
		fmt.Printf("encode %s  %.2f MB/s\n", result, mbPerSec(result))
	}
}
