// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consent

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/bounded"
)

// Record - an account's permission to submit items
//
// ExpiresAt is nil when the grant has no duration
type Record struct {
	GrantedAt   uint64
	ExpiresAt   *uint64
	MessageHash bounded.Bytes
}

// packed record layout
const (
	grantedAtOffset   = 0
	hasExpiryOffset   = grantedAtOffset + 8
	expiresAtOffset   = hasExpiryOffset + 1
	messageHashOffset = expiresAtOffset + 8
)

// IsExpired - true if the record has an expiry and now is after it
func (r *Record) IsExpired(now uint64) bool {
	return nil != r.ExpiresAt && now > *r.ExpiresAt
}

// pack - granted at ++ has expiry ++ expires at ++ message hash
func (r *Record) pack() []byte {
	hash := r.MessageHash.Bytes()
	buffer := make([]byte, messageHashOffset, messageHashOffset+len(hash))
	binary.BigEndian.PutUint64(buffer[grantedAtOffset:], r.GrantedAt)
	if nil != r.ExpiresAt {
		buffer[hasExpiryOffset] = 1
		binary.BigEndian.PutUint64(buffer[expiresAtOffset:], *r.ExpiresAt)
	}
	return append(buffer, hash...)
}

// unpack a stored record
//
// the hash length was checked when the record was written
func unpack(buffer []byte) *Record {
	if len(buffer) < messageHashOffset {
		logger.Panicf("consent: truncated record: %x", buffer)
	}

	r := &Record{
		GrantedAt: binary.BigEndian.Uint64(buffer[grantedAtOffset:]),
	}
	if 0 != buffer[hasExpiryOffset] {
		expiresAt := binary.BigEndian.Uint64(buffer[expiresAtOffset:])
		r.ExpiresAt = &expiresAt
	}

	stored := buffer[messageHashOffset:]
	r.MessageHash, _ = bounded.New(stored, len(stored), nil)
	return r
}
