// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// Buffer - holds the events of one command until it commits
type Buffer struct {
	events []Event
}

// Deposit - add an event
func (b *Buffer) Deposit(e Event) {
	b.events = append(b.events, e)
}

// Events - the events in deposit order
func (b *Buffer) Events() []Event {
	return b.events
}
