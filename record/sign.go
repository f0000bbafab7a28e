// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/fault"
)

// Sign - sign command with key, store the signature in the command
// and return the signed packed record
//
// the key must belong to the command's owner
func Sign(key *account.PrivateKey, command Command) (Packed, error) {
	owner := command.GetOwner()
	if nil == owner {
		return nil, fault.ErrMissingOwner
	}
	if *owner != *key.Account() {
		return nil, fault.ErrInvalidSignature
	}

	command.setSignature(nil)
	message, err := command.Pack()
	if fault.ErrInvalidSignature != err {
		if nil == err {
			err = fault.ErrInvalidSignature
		}
		return nil, err
	}

	command.setSignature(key.Sign(message))
	return command.Pack()
}
