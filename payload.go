// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"encoding/json"
	"errors"
	"fmt"
)

// payload is the wire form of an Encoding: a compact JSON object with
// the code table under "codes" and the bit string under "bits". The
// table keys are the symbol values in decimal.
type payload struct {
	Codes CodeTable `json:"codes"`
	Bits  string    `json:"bits"`
}

// ErrPayload indicates bytes that do not parse as a payload.
var ErrPayload = errors.New("huff: damaged payload")

// Payload returns the encoding as a self-describing byte sequence for
// transport through carriers that move bytes instead of lines.
func (e *Encoding) Payload() ([]byte, error) {
	p, err := json.Marshal(&payload{Codes: e.Codes, Bits: e.Bits})
	if err != nil {
		return nil, fmt.Errorf("huff: marshal payload: %w", err)
	}
	return p, nil
}

// ParsePayload parses a payload produced by Payload and returns the
// encoding it carries. Payloads without codes or without bits are
// rejected.
func ParsePayload(p []byte) (e *Encoding, err error) {
	var pl payload
	if err = json.Unmarshal(p, &pl); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayload, err)
	}
	if len(pl.Codes) == 0 {
		return nil, fmt.Errorf("%w: no codes", ErrPayload)
	}
	if len(pl.Bits) == 0 {
		return nil, fmt.Errorf("%w: no bits", ErrPayload)
	}
	return &Encoding{Bits: pl.Bits, Codes: pl.Codes}, nil
}
