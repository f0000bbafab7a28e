// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/util"
)

// Pack - SubmitItem
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing by the client
func (r *SubmitItem) Pack() (Packed, error) {
	if nil == r.Owner {
		return nil, fault.ErrMissingOwner
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(SubmitItemTag))
	message = util.AppendBytes(message, r.Cid)
	message = util.AppendBytes(message, r.EncryptedKey)
	message = util.AppendVarint64(message, uint64(r.Source))
	message = util.AppendBytes(message, r.Metadata)
	message = appendAccount(message, r.Owner)
	message = util.AppendVarint64(message, r.Nonce)

	return sign(message, r.Owner, r.Signature)
}

// Pack - DeleteItem
//
// NOTE: returns the "unsigned" message on signature failure
func (r *DeleteItem) Pack() (Packed, error) {
	if nil == r.Owner {
		return nil, fault.ErrMissingOwner
	}

	message := util.ToVarint64(uint64(DeleteItemTag))
	message = util.AppendBytes(message, r.ItemId[:])
	message = appendAccount(message, r.Owner)
	message = util.AppendVarint64(message, r.Nonce)

	return sign(message, r.Owner, r.Signature)
}

// Pack - GrantConsent
//
// the optional duration is a presence flag followed by the value
//
// NOTE: returns the "unsigned" message on signature failure
func (r *GrantConsent) Pack() (Packed, error) {
	if nil == r.Owner {
		return nil, fault.ErrMissingOwner
	}

	message := util.ToVarint64(uint64(GrantConsentTag))
	message = util.AppendBytes(message, r.MessageHash)
	if nil == r.Duration {
		message = util.AppendVarint64(message, 0)
	} else {
		message = util.AppendVarint64(message, 1)
		message = util.AppendVarint64(message, *r.Duration)
	}
	message = appendAccount(message, r.Owner)
	message = util.AppendVarint64(message, r.Nonce)

	return sign(message, r.Owner, r.Signature)
}

// Pack - RevokeConsent
//
// NOTE: returns the "unsigned" message on signature failure
func (r *RevokeConsent) Pack() (Packed, error) {
	if nil == r.Owner {
		return nil, fault.ErrMissingOwner
	}

	message := util.ToVarint64(uint64(RevokeConsentTag))
	message = appendAccount(message, r.Owner)
	message = util.AppendVarint64(message, r.Nonce)

	return sign(message, r.Owner, r.Signature)
}

// verify the signature then append it
func sign(message []byte, owner *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return message, fault.ErrInvalidSignature
	}
	err := owner.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return util.AppendBytes(message, signature), nil
}

func appendAccount(buffer []byte, a *account.Account) []byte {
	return util.AppendBytes(buffer, a.Bytes())
}
