// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notifications emitted by successful ledger commands
//
// events are observational only; nothing reads them back
// to make a ledger decision
package event

import (
	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/record"
)

// names of the event kinds
const (
	ShadowItemStoredKind  = "ShadowItemStored"
	ShadowItemDeletedKind = "ShadowItemDeleted"
	ConsentGrantedKind    = "ConsentGranted"
	ConsentRevokedKind    = "ConsentRevoked"
)

// Event - any of the event types below
type Event interface {
	Kind() string
}

// Sink - destination for events
type Sink interface {
	Deposit(Event)
}

// ShadowItemStored - an item was appended to an account's ledger
type ShadowItemStored struct {
	Account *account.Account `json:"account"`
	ItemId  digest.Digest    `json:"itemId"`
	Cid     record.HexBytes  `json:"cid"`
	Source  string           `json:"source"`
}

// ShadowItemDeleted - an item was tombstoned
type ShadowItemDeleted struct {
	Account *account.Account `json:"account"`
	ItemId  digest.Digest    `json:"itemId"`
}

// ConsentGranted - a consent record was created or replaced
type ConsentGranted struct {
	Account     *account.Account `json:"account"`
	MessageHash string           `json:"messageHash"`
	ExpiresAt   *uint64          `json:"expiresAt,omitempty"`
}

// ConsentRevoked - a consent record was removed
type ConsentRevoked struct {
	Account *account.Account `json:"account"`
}

// Kind - event kind name
func (ShadowItemStored) Kind() string { return ShadowItemStoredKind }

// Kind - event kind name
func (ShadowItemDeleted) Kind() string { return ShadowItemDeletedKind }

// Kind - event kind name
func (ConsentGranted) Kind() string { return ConsentGrantedKind }

// Kind - event kind name
func (ConsentRevoked) Kind() string { return ConsentRevokedKind }
