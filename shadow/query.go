// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shadow

import (
	"encoding/binary"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/consent"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/ledger"
)

// MaximumEventCount - largest page returned by Events
const MaximumEventCount = 100

// JournalEntry - an event and its position in the journal
type JournalEntry struct {
	Count uint64 `json:"count"`
	*event.Entry
}

// queries read committed state only

// ActiveItems - items of who that are not deleted, in submission order
func (r *Runtime) ActiveItems(who *account.Account) ([]ledger.Item, error) {
	return r.ledger.ActiveItems(who)
}

// Item - a single item of who, including a deleted one
func (r *Runtime) Item(who *account.Account, id digest.Digest) (*ledger.Item, error) {
	return r.ledger.Item(who, id)
}

// Consent - the consent record of who
func (r *Runtime) Consent(who *account.Account) (*consent.Record, error) {
	return r.gate.Get(who)
}

// Events - up to count journal entries beginning at start
//
// also returns the start value for the following page
func (r *Runtime) Events(start uint64, count int) ([]JournalEntry, uint64, error) {
	if count <= 0 || count > MaximumEventCount {
		return nil, 0, fault.ErrInvalidCount
	}

	cursor := r.db.Pool.Events.NewFetchCursor().Seek(countKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	entries := make([]JournalEntry, 0, len(elements))
	next := start
	for _, e := range elements {
		entry, err := event.Unpack(e.Value)
		if nil != err {
			return nil, 0, err
		}
		n := binary.BigEndian.Uint64(e.Key)
		entries = append(entries, JournalEntry{
			Count: n,
			Entry: entry,
		})
		next = n + 1
	}
	return entries, next, nil
}

// Height - current logical clock value
func (r *Runtime) Height() uint64 {
	return r.clock.Height()
}

// Limits - the configured bounds
func (r *Runtime) Limits() Limits {
	return r.limits
}
