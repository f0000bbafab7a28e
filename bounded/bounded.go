// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bounded - byte buffers with an enforced maximum length
//
// A Bytes value can only be obtained through New, so holding one is
// proof that the length check was made against the configured limit.
package bounded

// Bytes - an immutable byte sequence with a checked length
type Bytes struct {
	data []byte
}

// New - copy data into a bounded buffer
//
// returns the overflow error if the data exceeds the maximum length,
// no state is touched in either case
func New(data []byte, maximum int, overflow error) (Bytes, error) {
	if len(data) > maximum {
		return Bytes{}, overflow
	}
	b := make([]byte, len(data))
	copy(b, data)
	return Bytes{data: b}, nil
}

// Bytes - copy of the contents
func (b Bytes) Bytes() []byte {
	return append([]byte{}, b.data...)
}

// Len - number of bytes held
func (b Bytes) Len() int {
	return len(b.data)
}
