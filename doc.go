// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package huff implements Huffman coding of byte sequences. Encode
// derives a prefix-free code from the byte frequencies of a text and
// returns the encoded bit string together with the code table. Decode
// reverses the transformation using the table alone; no tree is
// rebuilt.
//
// Bits are represented as textual '0' and '1' characters. The code
// table must travel with the bit string; Payload provides a
// self-describing container for both.
package huff
