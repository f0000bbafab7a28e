// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/digest"
)

// DeriveId - identifier of a shadow item
//
//   SHA3-256(packed account ++ sequence as 8 byte big endian ++ cid)
//
// the per-account sequence makes repeated submissions of the
// same cid produce distinct identifiers
func DeriveId(who *account.Account, sequence uint64, cid []byte) digest.Digest {
	owner := who.Bytes()
	buffer := make([]byte, 0, len(owner)+8+len(cid))
	buffer = append(buffer, owner...)
	buffer = append(buffer, 0, 0, 0, 0, 0, 0, 0, 0)
	binary.BigEndian.PutUint64(buffer[len(owner):], sequence)
	buffer = append(buffer, cid...)
	return digest.New(buffer)
}
