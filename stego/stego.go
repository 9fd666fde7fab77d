// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package stego hides byte payloads in the low bits of image pixels.
//
// A payload is framed with a 4-byte big-endian length and written most
// significant bit first into the least significant bits of the R, G
// and B channel bytes in row major order. The alpha channel stays
// opaque and carries no payload bits.
package stego

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/icza/bitio"
	_ "golang.org/x/image/bmp"
)

// Errors reported by Embed and Extract.
var (
	ErrTooLarge  = errors.New("stego: payload exceeds image capacity")
	ErrNoPayload = errors.New("stego: image carries no payload")
)

// Capacity returns the number of payload bytes an image with the given
// bounds can carry once the length frame is accounted for.
func Capacity(r image.Rectangle) int {
	n := r.Dx()*r.Dy()*3/8 - 4
	if n < 0 {
		return 0
	}
	return n
}

// rgbCopy copies img into an NRGBA image with every alpha value forced
// to opaque.
func rgbCopy(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// channel maps the index of a payload bit to the offset of the channel
// byte carrying it. Every fourth byte of an NRGBA image is an alpha
// value and must be skipped.
func channel(i int) int { return (i/3)*4 + i%3 }

// Embed hides the payload in a copy of img and returns the copy. The
// payload is framed with its length, so Extract can recover it without
// further information. Embed fails with ErrTooLarge if the framed
// payload does not fit into the image.
func Embed(img image.Image, payload []byte) (*image.NRGBA, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d payload bytes",
			ErrTooLarge, len(payload))
	}
	b := img.Bounds()
	capBits := b.Dx() * b.Dy() * 3
	needBits := (4 + len(payload)) * 8
	if needBits > capBits {
		return nil, fmt.Errorf("%w: %d bits needed, %d available",
			ErrTooLarge, needBits, capBits)
	}

	framed := make([]byte, 0, 4+len(payload))
	framed = binary.BigEndian.AppendUint32(framed, uint32(len(payload)))
	framed = append(framed, payload...)

	dst := rgbCopy(img)
	r := bitio.NewReader(bytes.NewReader(framed))
	for i := 0; i < needBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("stego: payload bits: %w", err)
		}
		j := channel(i)
		if bit {
			dst.Pix[j] |= 1
		} else {
			dst.Pix[j] &^= 1
		}
	}
	return dst, nil
}

// Extract recovers a payload hidden by Embed. It fails with
// ErrNoPayload if the image cannot hold a length frame or if the frame
// declares more bytes than the image can hold.
func Extract(img image.Image) ([]byte, error) {
	b := img.Bounds()
	capBits := b.Dx() * b.Dy() * 3
	if capBits < 32 {
		return nil, fmt.Errorf("%w: image too small", ErrNoPayload)
	}
	src := rgbCopy(img)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	writeLSB := func(i int) error {
		return w.WriteBool(src.Pix[channel(i)]&1 != 0)
	}
	for i := 0; i < 32; i++ {
		if err := writeLSB(i); err != nil {
			return nil, fmt.Errorf("stego: length frame: %w", err)
		}
	}
	v := binary.BigEndian.Uint32(buf.Bytes())
	if uint64(v) > uint64((capBits-32)/8) {
		return nil, fmt.Errorf("%w: frame declares %d bytes",
			ErrNoPayload, v)
	}
	n := int(v)
	for i := 32; i < 32+8*n; i++ {
		if err := writeLSB(i); err != nil {
			return nil, fmt.Errorf("stego: payload bits: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("stego: payload bits: %w", err)
	}
	return buf.Bytes()[4:], nil
}

// DecodeFile reads the carrier image from path. PNG, JPEG and BMP
// files are supported.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("stego: decode %s: %w", path, err)
	}
	return img, nil
}

// EncodeFile writes the image to path as PNG. Only a lossless format
// keeps the payload bits intact.
func EncodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("stego: encode %s: %w", path, err)
	}
	return f.Close()
}
