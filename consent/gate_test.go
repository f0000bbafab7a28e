// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consent_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/consent"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/fixtures"
	"github.com/bitmark-inc/shadowd/storage"
)

const maxHashLength = 64

func setupGate(t *testing.T) (*consent.Gate, *storage.Database) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	return consent.New(logger.New(fixtures.LogCategory), db.Pool.ConsentRecords, maxHashLength), db
}

func teardownGate(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

// run f in a transaction, committing only on success
func inTransaction(t *testing.T, db *storage.Database, f func(storage.Transaction) error) error {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func grant(t *testing.T, g *consent.Gate, db *storage.Database, sink event.Sink, n byte, hash []byte, duration *uint64, now uint64) (*consent.Record, error) {
	var r *consent.Record
	err := inTransaction(t, db, func(trx storage.Transaction) error {
		var err error
		r, err = g.Grant(trx, sink, fixtures.Account(n), hash, duration, now)
		return err
	})
	return r, err
}

func check(t *testing.T, g *consent.Gate, db *storage.Database, n byte, now uint64) error {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	defer trx.Abort()
	return g.Check(trx, fixtures.Account(n), now)
}

func duration(d uint64) *uint64 {
	return &d
}

func TestGrantWithoutDuration(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	var sink event.Buffer
	r, err := grant(t, g, db, &sink, 1, []byte("hash"), nil, 5)
	assert.Nil(t, err, "wrong grant error")
	assert.Equal(t, uint64(5), r.GrantedAt, "wrong granted at")
	assert.Nil(t, r.ExpiresAt, "wrong expiry")

	for _, now := range []uint64{5, 6, 1000, math.MaxUint64} {
		assert.Nil(t, check(t, g, db, 1, now), "wrong check at: %d", now)
	}

	stored, err := g.Get(fixtures.Account(1))
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, uint64(5), stored.GrantedAt, "wrong stored granted at")
	assert.Nil(t, stored.ExpiresAt, "wrong stored expiry")
	assert.Equal(t, "hash", string(stored.MessageHash.Bytes()), "wrong stored hash")

	events := sink.Events()
	assert.Equal(t, 1, len(events), "wrong event count")
	assert.Equal(t, event.ConsentGranted{
		Account:     fixtures.Account(1),
		MessageHash: "68617368",
	}, events[0], "wrong event")
}

func TestGrantWindow(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	_, err := grant(t, g, db, &event.Buffer{}, 1, []byte("hash"), duration(10), 1)
	assert.Nil(t, err, "wrong grant error")

	for now := uint64(1); now <= 11; now += 1 {
		assert.Nil(t, check(t, g, db, 1, now), "wrong check at: %d", now)
	}
	assert.Equal(t, fault.ErrConsentExpired, check(t, g, db, 1, 12), "wrong check after expiry")

	// zero duration: only the granting height is valid
	_, err = grant(t, g, db, &event.Buffer{}, 2, []byte("hash"), duration(0), 7)
	assert.Nil(t, err, "wrong zero duration grant error")
	assert.Nil(t, check(t, g, db, 2, 7), "wrong check at grant height")
	assert.Equal(t, fault.ErrConsentExpired, check(t, g, db, 2, 8), "wrong check after zero duration")
}

func TestGrantSaturates(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	r, err := grant(t, g, db, &event.Buffer{}, 1, nil, duration(10), math.MaxUint64-1)
	assert.Nil(t, err, "wrong grant error")
	assert.Equal(t, uint64(math.MaxUint64), *r.ExpiresAt, "wrong saturated expiry")
	assert.Nil(t, check(t, g, db, 1, math.MaxUint64), "wrong check at max height")
}

func TestRegrantReplaces(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	_, err := grant(t, g, db, &event.Buffer{}, 1, []byte("first"), duration(1), 1)
	assert.Nil(t, err, "wrong first grant error")
	assert.Equal(t, fault.ErrConsentExpired, check(t, g, db, 1, 3), "wrong check before regrant")

	_, err = grant(t, g, db, &event.Buffer{}, 1, []byte("second"), nil, 3)
	assert.Nil(t, err, "wrong second grant error")
	assert.Nil(t, check(t, g, db, 1, 100), "wrong check after regrant")

	stored, err := g.Get(fixtures.Account(1))
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, uint64(3), stored.GrantedAt, "wrong replaced granted at")
	assert.Nil(t, stored.ExpiresAt, "wrong replaced expiry")
	assert.Equal(t, "second", string(stored.MessageHash.Bytes()), "wrong replaced hash")
}

func TestGrantHashTooLong(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	_, err := grant(t, g, db, &event.Buffer{}, 1, []byte("kept"), nil, 1)
	assert.Nil(t, err, "wrong grant error")

	var sink event.Buffer
	_, err = grant(t, g, db, &sink, 1, bytes.Repeat([]byte{'h'}, maxHashLength+1), duration(1), 2)
	assert.Equal(t, fault.ErrMessageHashTooLong, err, "wrong long hash error")
	assert.Equal(t, 0, len(sink.Events()), "event emitted on failure")

	stored, err := g.Get(fixtures.Account(1))
	assert.Nil(t, err, "wrong get error")
	assert.Equal(t, "kept", string(stored.MessageHash.Bytes()), "previous record modified")
	assert.Equal(t, uint64(1), stored.GrantedAt, "previous granted at modified")

	_, err = grant(t, g, db, &event.Buffer{}, 2, bytes.Repeat([]byte{'h'}, maxHashLength), nil, 1)
	assert.Nil(t, err, "wrong error for hash at limit")
}

func TestRevoke(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	var sink event.Buffer
	revoke := func(n byte) error {
		return inTransaction(t, db, func(trx storage.Transaction) error {
			return g.Revoke(trx, &sink, fixtures.Account(n))
		})
	}

	assert.Equal(t, fault.ErrConsentNotFound, revoke(1), "wrong revoke of absent record")
	assert.Equal(t, 0, len(sink.Events()), "event emitted on failure")

	_, err := grant(t, g, db, &event.Buffer{}, 1, []byte("hash"), nil, 1)
	assert.Nil(t, err, "wrong grant error")

	assert.Nil(t, revoke(1), "wrong revoke error")
	assert.Equal(t, []event.Event{event.ConsentRevoked{Account: fixtures.Account(1)}}, sink.Events(), "wrong events")

	assert.Equal(t, fault.ErrNoConsent, check(t, g, db, 1, 1), "wrong check after revoke")
	_, err = g.Get(fixtures.Account(1))
	assert.Equal(t, fault.ErrConsentNotFound, err, "wrong get after revoke")

	assert.Equal(t, fault.ErrConsentNotFound, revoke(1), "wrong second revoke")
}

func TestCheckWithoutRecord(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	assert.Equal(t, fault.ErrNoConsent, check(t, g, db, 9, 1), "wrong check without record")

	// records are per account
	_, err := grant(t, g, db, &event.Buffer{}, 1, []byte("hash"), nil, 1)
	assert.Nil(t, err, "wrong grant error")
	assert.Equal(t, fault.ErrNoConsent, check(t, g, db, 2, 1), "wrong check for other account")
}

func TestCheckSeesPendingGrant(t *testing.T) {
	g, db := setupGate(t)
	defer teardownGate(db)

	trx, err := db.Begin()
	assert.Nil(t, err, "wrong begin error")
	defer trx.Abort()

	_, err = g.Grant(trx, &event.Buffer{}, fixtures.Account(1), []byte("hash"), nil, 1)
	assert.Nil(t, err, "wrong grant error")
	assert.Nil(t, g.Check(trx, fixtures.Account(1), 1), "pending grant not visible")

	_, err = g.Get(fixtures.Account(1))
	assert.Equal(t, fault.ErrConsentNotFound, err, "uncommitted grant visible")
}
