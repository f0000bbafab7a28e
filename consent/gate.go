// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consent - at most one consent record per account, gating
// item submission by a logical time window
package consent

import (
	"encoding/hex"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/bounded"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/storage"
)

// Gate - consent records keyed by account
type Gate struct {
	log           *logger.L
	pool          *storage.PoolHandle
	maxHashLength int
}

// New - create a gate over the consent pool
func New(log *logger.L, pool *storage.PoolHandle, maxMessageHashLength int) *Gate {
	return &Gate{
		log:           log,
		pool:          pool,
		maxHashLength: maxMessageHashLength,
	}
}

// Grant - create or replace the record for who
//
// a duration makes the record expire at now + duration,
// saturating at the largest height
func (g *Gate) Grant(trx storage.Transaction, sink event.Sink, who *account.Account, messageHash []byte, duration *uint64, now uint64) (*Record, error) {

	hash, err := bounded.New(messageHash, g.maxHashLength, fault.ErrMessageHashTooLong)
	if nil != err {
		return nil, err
	}

	r := &Record{
		GrantedAt:   now,
		MessageHash: hash,
	}
	if nil != duration {
		expiresAt := saturatingAdd(now, *duration)
		r.ExpiresAt = &expiresAt
	}

	trx.Put(g.pool, who.Bytes(), r.pack())

	g.log.Debugf("grant: %s  at: %d", who, now)

	sink.Deposit(event.ConsentGranted{
		Account:     who,
		MessageHash: hex.EncodeToString(hash.Bytes()),
		ExpiresAt:   r.ExpiresAt,
	})

	return r, nil
}

// Revoke - remove the record for who
func (g *Gate) Revoke(trx storage.Transaction, sink event.Sink, who *account.Account) error {
	key := who.Bytes()
	if !trx.Has(g.pool, key) {
		return fault.ErrConsentNotFound
	}

	trx.Delete(g.pool, key)

	g.log.Debugf("revoke: %s", who)

	sink.Deposit(event.ConsentRevoked{
		Account: who,
	})
	return nil
}

// Check - succeed only if who holds an unexpired record at now
func (g *Gate) Check(trx storage.Transaction, who *account.Account, now uint64) error {
	buffer := trx.Get(g.pool, who.Bytes())
	if nil == buffer {
		return fault.ErrNoConsent
	}
	if unpack(buffer).IsExpired(now) {
		return fault.ErrConsentExpired
	}
	return nil
}

// Get - the committed record for who
func (g *Gate) Get(who *account.Account) (*Record, error) {
	buffer := g.pool.Get(who.Bytes())
	if nil == buffer {
		return nil, fault.ErrConsentNotFound
	}
	return unpack(buffer), nil
}

func saturatingAdd(a uint64, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
