// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - signed client commands in canonical packed form
//
// the packed form of a command is what its owner signs; the SHA3-256
// of the signed packed form is the command id used to reject replays
package record

import (
	"encoding/hex"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/util"
)

// TagType - type code for commands
type TagType uint64

// enumerate the possible command types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	SubmitItemTag    = TagType(iota) // append an item
	DeleteItemTag    = TagType(iota) // tombstone an item
	GrantConsentTag  = TagType(iota) // create or replace consent
	RevokeConsentTag = TagType(iota) // remove consent

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Command - generic command interface
type Command interface {
	Pack() (Packed, error)
	GetOwner() *account.Account
	setSignature(account.Signature)
}

// byte sizes for various fields
const (
	maxSignatureLength = 1024
)

// HexBytes - binary field shown as hex in JSON
type HexBytes []byte

// SubmitItem - the unpacked submit item structure
type SubmitItem struct {
	Cid          HexBytes          `json:"cid"`          // hex
	EncryptedKey HexBytes          `json:"encryptedKey"` // hex
	Source       uint8             `json:"source"`       // 0: GitHub, 1: Twitter
	Metadata     HexBytes          `json:"metadata"`     // hex
	Owner        *account.Account  `json:"owner"`        // base58
	Nonce        uint64            `json:"nonce,string"` // to allow identical items
	Signature    account.Signature `json:"signature"`    // hex
}

// DeleteItem - the unpacked delete item structure
type DeleteItem struct {
	ItemId    digest.Digest     `json:"itemId"`       // item to tombstone
	Owner     *account.Account  `json:"owner"`        // base58
	Nonce     uint64            `json:"nonce,string"` // unsigned 0..N
	Signature account.Signature `json:"signature"`    // hex
}

// GrantConsent - the unpacked grant consent structure
type GrantConsent struct {
	MessageHash HexBytes          `json:"messageHash"`        // hex: hash of the approved text
	Duration    *uint64           `json:"duration,omitempty"` // optional logical time delta
	Owner       *account.Account  `json:"owner"`              // base58
	Nonce       uint64            `json:"nonce,string"`       // unsigned 0..N
	Signature   account.Signature `json:"signature"`          // hex
}

// RevokeConsent - the unpacked revoke consent structure
type RevokeConsent struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Nonce     uint64            `json:"nonce,string"` // unsigned 0..N
	Signature account.Signature `json:"signature"`    // hex
}

// GetOwner - the account that signs the record
func (r *SubmitItem) GetOwner() *account.Account { return r.Owner }

// GetOwner - the account that signs the record
func (r *DeleteItem) GetOwner() *account.Account { return r.Owner }

// GetOwner - the account that signs the record
func (r *GrantConsent) GetOwner() *account.Account { return r.Owner }

// GetOwner - the account that signs the record
func (r *RevokeConsent) GetOwner() *account.Account { return r.Owner }

func (r *SubmitItem) setSignature(signature account.Signature)    { r.Signature = signature }
func (r *DeleteItem) setSignature(signature account.Signature)    { r.Signature = signature }
func (r *GrantConsent) setSignature(signature account.Signature)  { r.Signature = signature }
func (r *RevokeConsent) setSignature(signature account.Signature) { r.Signature = signature }

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a command record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *SubmitItem, SubmitItem:
		return "SubmitItem", true

	case *DeleteItem, DeleteItem:
		return "DeleteItem", true

	case *GrantConsent, GrantConsent:
		return "GrantConsent", true

	case *RevokeConsent, RevokeConsent:
		return "RevokeConsent", true

	default:
		return "*unknown*", false
	}
}

// MakeId - the command id of a packed record
func (record Packed) MakeId() digest.Digest {
	return digest.New(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	return HexBytes(record).MarshalText()
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	return (*HexBytes)(record).UnmarshalText(s)
}

// MarshalText - hex encoding
func (h HexBytes) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(h))
	b := make([]byte, size)
	hex.Encode(b, h)
	return b, nil
}

// UnmarshalText - hex decoding
func (h *HexBytes) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*h = b
	return nil
}
