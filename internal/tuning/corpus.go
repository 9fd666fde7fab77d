package tuning

import (
	"io/fs"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/huff"
)

type File struct {
	Name string
	Data []byte
}

func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

func HuffBits(data []byte) (int64, error) {
	e, err := huff.Encode(string(data))
	if err != nil {
		return 0, err
	}
	return int64(len(e.Bits)), nil
}

func ZstdSize(data []byte) (compressedSize int64, err error) {
	cw := &countWriter{}
	w, err := zstd.NewWriter(cw)
	if err != nil {
		return 0, err
	}
	if _, err = w.Write(data); err != nil {
		w.Close()
		return cw.n, err
	}
	if err = w.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}
