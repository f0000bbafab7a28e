// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"
)

// Entry - an event as stored in the journal
type Entry struct {
	Height uint64          `json:"height"`
	Kind   string          `json:"event"`
	Data   json.RawMessage `json:"data"`
}

// Pack - encode an event with the height it was committed at
func Pack(height uint64, e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if nil != err {
		return nil, err
	}
	return json.Marshal(Entry{
		Height: height,
		Kind:   e.Kind(),
		Data:   data,
	})
}

// Unpack - decode a journal entry
func Unpack(buffer []byte) (*Entry, error) {
	var entry Entry
	err := json.Unmarshal(buffer, &entry)
	if nil != err {
		return nil, err
	}
	return &entry, nil
}
