// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/util"
)

// Unpack - turn a byte slice into a command
//
// the signature is not verified, pack the result again to do that
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *record.SubmitItem:
func (record Packed) Unpack(testnet bool) (Command, int, error) {

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrNotShadowCommand
	}

	var r Command
	ok := false

unpack_switch:
	switch TagType(recordType) {

	case SubmitItemTag:
		s := &SubmitItem{}

		cid, used := util.FromBytes(record[n:])
		if 0 == used {
			break unpack_switch
		}
		n += used
		s.Cid = cid

		s.EncryptedKey, used = util.FromBytes(record[n:])
		if 0 == used {
			break unpack_switch
		}
		n += used

		source, used := util.FromVarint64(record[n:])
		if 0 == used || source > 255 {
			break unpack_switch
		}
		n += used
		s.Source = uint8(source)

		s.Metadata, used = util.FromBytes(record[n:])
		if 0 == used {
			break unpack_switch
		}
		n += used

		used, err := unpackOwnership(record[n:], testnet, &s.Owner, &s.Nonce, &s.Signature)
		if nil != err {
			return nil, 0, err
		}
		n += used
		r, ok = s, true

	case DeleteItemTag:
		d := &DeleteItem{}

		id, used := util.FromBytes(record[n:])
		if 0 == used {
			break unpack_switch
		}
		err := digest.FromBytes(&d.ItemId, id)
		if nil != err {
			return nil, 0, err
		}
		n += used

		used, err = unpackOwnership(record[n:], testnet, &d.Owner, &d.Nonce, &d.Signature)
		if nil != err {
			return nil, 0, err
		}
		n += used
		r, ok = d, true

	case GrantConsentTag:
		g := &GrantConsent{}

		hash, used := util.FromBytes(record[n:])
		if 0 == used {
			break unpack_switch
		}
		n += used
		g.MessageHash = hash

		flag, used := util.FromVarint64(record[n:])
		if 0 == used {
			break unpack_switch
		}
		n += used
		switch flag {
		case 0:
		case 1:
			duration, used := util.FromVarint64(record[n:])
			if 0 == used {
				break unpack_switch
			}
			n += used
			g.Duration = &duration
		default:
			return nil, 0, fault.ErrNotShadowCommand
		}

		used, err := unpackOwnership(record[n:], testnet, &g.Owner, &g.Nonce, &g.Signature)
		if nil != err {
			return nil, 0, err
		}
		n += used
		r, ok = g, true

	case RevokeConsentTag:
		v := &RevokeConsent{}

		used, err := unpackOwnership(record[n:], testnet, &v.Owner, &v.Nonce, &v.Signature)
		if nil != err {
			return nil, 0, err
		}
		n += used
		r, ok = v, true

	default:
		return nil, 0, fault.ErrNotShadowCommand
	}

	if !ok {
		return nil, 0, fault.ErrUnexpectedEndOfRecord
	}
	return r, n, nil
}

// owner ++ nonce ++ signature, common to all commands
func unpackOwnership(buffer []byte, testnet bool, owner **account.Account, nonce *uint64, signature *account.Signature) (int, error) {

	ownerBytes, n := util.FromBytes(buffer)
	if 0 == n {
		return 0, fault.ErrUnexpectedEndOfRecord
	}
	a, err := account.FromBytes(ownerBytes)
	if nil != err {
		return 0, err
	}
	if a.IsTesting() != testnet {
		return 0, fault.ErrWrongNetworkForPublicKey
	}

	value, used := util.FromVarint64(buffer[n:])
	if 0 == used {
		return 0, fault.ErrUnexpectedEndOfRecord
	}
	n += used

	s, used := util.FromBytes(buffer[n:])
	if 0 == used {
		return 0, fault.ErrUnexpectedEndOfRecord
	}
	n += used
	if len(s) > maxSignatureLength {
		return 0, fault.ErrInvalidSignature
	}

	*owner = a
	*nonce = value
	*signature = s
	return n, nil
}
