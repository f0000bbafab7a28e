// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shadow_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/fixtures"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/shadow"
	"github.com/bitmark-inc/shadowd/storage"
)

var testLimits = shadow.Limits{
	Limits: ledger.Limits{
		MaxItemsPerAccount: 100,
		MaxCidLength:       100,
		MaxKeyLength:       512,
		MaxMetadataLength:  256,
	},
	MaxMessageHashLength: 64,
}

// sink safe for use from several goroutines
type lockedSink struct {
	sync.Mutex
	events []event.Event
}

func (s *lockedSink) Deposit(e event.Event) {
	s.Lock()
	s.events = append(s.events, e)
	s.Unlock()
}

func (s *lockedSink) kinds() []string {
	s.Lock()
	defer s.Unlock()
	k := make([]string, len(s.events))
	for i, e := range s.events {
		k[i] = e.Kind()
	}
	return k
}

func setupRuntime(t *testing.T) (*shadow.Runtime, *storage.Database, *lockedSink) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	sink := &lockedSink{}
	r := shadow.New(logger.New(fixtures.LogCategory), db, sink, testLimits)
	return r, db, sink
}

func teardownRuntime(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

var txCount struct {
	sync.Mutex
	n int
}

// a fresh command id
func txId() digest.Digest {
	txCount.Lock()
	defer txCount.Unlock()
	txCount.n += 1
	return digest.New([]byte(fmt.Sprintf("tx-%d", txCount.n)))
}

func submitArguments(cid string) *ledger.SubmitArguments {
	return &ledger.SubmitArguments{
		Cid:          []byte(cid),
		EncryptedKey: []byte("key"),
		Source:       ledger.GitHub.Tag(),
		Metadata:     []byte("{}"),
	}
}

func duration(d uint64) *uint64 {
	return &d
}

func TestSubmitWithoutConsent(t *testing.T) {
	r, db, sink := setupRuntime(t)
	defer teardownRuntime(db)

	owner := fixtures.Account(1)

	_, err := r.SubmitItem(txId(), owner, submitArguments("Qm123"))
	assert.Equal(t, fault.ErrNoConsent, err, "wrong error")

	items, err := r.ActiveItems(owner)
	assert.Nil(t, err, "wrong active items error")
	assert.Equal(t, 0, len(items), "wrong item count")
	assert.Equal(t, 0, len(sink.kinds()), "events for failed command")

	entries, next, err := r.Events(0, 10)
	assert.Nil(t, err, "wrong events error")
	assert.Equal(t, 0, len(entries), "journal entries for failed command")
	assert.Equal(t, uint64(0), next, "wrong next")
}

func TestCommandSequence(t *testing.T) {
	r, db, sink := setupRuntime(t)
	defer teardownRuntime(db)

	owner := fixtures.Account(1)

	_, err := r.Tick()
	assert.Nil(t, err, "wrong tick error")

	record, err := r.GrantConsent(txId(), owner, []byte("hash"), nil)
	assert.Nil(t, err, "wrong grant error")
	assert.Equal(t, uint64(1), record.GrantedAt, "wrong granted at")
	assert.Nil(t, record.ExpiresAt, "wrong expires at")

	id, err := r.SubmitItem(txId(), owner, submitArguments("Qm123"))
	assert.Nil(t, err, "wrong submit error")

	items, err := r.ActiveItems(owner)
	assert.Nil(t, err, "wrong active items error")
	assert.Equal(t, 1, len(items), "wrong item count")
	assert.Equal(t, id, items[0].Id, "wrong item id")
	assert.Equal(t, []byte("Qm123"), items[0].Cid.Bytes(), "wrong item cid")
	assert.False(t, items[0].Deleted, "wrong deleted flag")

	err = r.DeleteItem(txId(), owner, id)
	assert.Nil(t, err, "wrong delete error")

	item, err := r.Item(owner, id)
	assert.Nil(t, err, "wrong item error")
	assert.True(t, item.Deleted, "item not tombstoned")

	err = r.RevokeConsent(txId(), owner)
	assert.Nil(t, err, "wrong revoke error")

	_, err = r.Consent(owner)
	assert.Equal(t, fault.ErrConsentNotFound, err, "wrong consent error after revoke")

	err = r.RevokeConsent(txId(), owner)
	assert.Equal(t, fault.ErrConsentNotFound, err, "wrong second revoke error")

	expected := []string{
		event.ConsentGrantedKind,
		event.ShadowItemStoredKind,
		event.ShadowItemDeletedKind,
		event.ConsentRevokedKind,
	}
	assert.Equal(t, expected, sink.kinds(), "wrong events")

	entries, next, err := r.Events(0, 10)
	assert.Nil(t, err, "wrong events error")
	assert.Equal(t, uint64(4), next, "wrong next")
	assert.Equal(t, len(expected), len(entries), "wrong journal length")

	journalCount, found := db.Pool.Clock.GetN([]byte("events"))
	assert.True(t, found, "journal count not stored")
	assert.Equal(t, uint64(4), journalCount, "wrong journal count")
	for i, e := range entries {
		assert.Equal(t, uint64(i), e.Count, "%d: wrong count", i)
		assert.Equal(t, expected[i], e.Kind, "%d: wrong kind", i)
		assert.Equal(t, uint64(1), e.Height, "%d: wrong height", i)
	}

	// paging
	entries, next, err = r.Events(1, 2)
	assert.Nil(t, err, "wrong page error")
	assert.Equal(t, 2, len(entries), "wrong page length")
	assert.Equal(t, uint64(1), entries[0].Count, "wrong page start")
	assert.Equal(t, uint64(3), next, "wrong page next")

	entries, next, err = r.Events(next, 2)
	assert.Nil(t, err, "wrong last page error")
	assert.Equal(t, 1, len(entries), "wrong last page length")
	assert.Equal(t, uint64(4), next, "wrong last page next")
}

func TestJournalBinaryCid(t *testing.T) {
	r, db, _ := setupRuntime(t)
	defer teardownRuntime(db)

	owner := fixtures.Account(2)
	cid := string([]byte{0x12, 0x20, 0xff, 0xfe, 0x80})

	_, err := r.GrantConsent(txId(), owner, []byte("hash"), nil)
	assert.Nil(t, err, "wrong grant error")

	id, err := r.SubmitItem(txId(), owner, submitArguments(cid))
	assert.Nil(t, err, "wrong submit error")

	entries, _, err := r.Events(0, 10)
	assert.Nil(t, err, "wrong events error")
	if !assert.Equal(t, 2, len(entries), "wrong journal length") {
		return
	}
	assert.Equal(t, event.ShadowItemStoredKind, entries[1].Kind, "wrong kind")

	var stored event.ShadowItemStored
	err = json.Unmarshal(entries[1].Data, &stored)
	assert.Nil(t, err, "wrong data error")
	assert.Equal(t, id, stored.ItemId, "wrong item id")
	assert.Equal(t, []byte(cid), []byte(stored.Cid), "journal cid changed")
}

func TestEventsCount(t *testing.T) {
	r, db, _ := setupRuntime(t)
	defer teardownRuntime(db)

	for _, count := range []int{-1, 0, shadow.MaximumEventCount + 1} {
		_, _, err := r.Events(0, count)
		assert.Equal(t, fault.ErrInvalidCount, err, "wrong error for count: %d", count)
	}
}

func TestReplay(t *testing.T) {
	r, db, sink := setupRuntime(t)
	defer teardownRuntime(db)

	owner := fixtures.Account(1)

	// a failed command does not use up its id
	failed := txId()
	_, err := r.SubmitItem(failed, owner, submitArguments("Qm1"))
	assert.Equal(t, fault.ErrNoConsent, err, "wrong error without consent")

	grant := txId()
	_, err = r.GrantConsent(grant, owner, []byte("hash"), nil)
	assert.Nil(t, err, "wrong grant error")

	_, err = r.GrantConsent(grant, owner, []byte("other"), nil)
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "wrong replay error")

	record, err := r.Consent(owner)
	assert.Nil(t, err, "wrong consent error")
	assert.Equal(t, "hash", string(record.MessageHash.Bytes()), "replay changed the record")

	_, err = r.SubmitItem(failed, owner, submitArguments("Qm1"))
	assert.Nil(t, err, "wrong error for id of failed command")

	_, err = r.SubmitItem(failed, owner, submitArguments("Qm1"))
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "wrong submit replay error")

	assert.Equal(t, 2, len(sink.kinds()), "wrong event count")
}

func TestConsentWindow(t *testing.T) {
	r, db, _ := setupRuntime(t)
	defer teardownRuntime(db)

	owner := fixtures.Account(1)

	height, err := r.Tick()
	assert.Nil(t, err, "wrong tick error")
	assert.Equal(t, uint64(1), height, "wrong height")

	_, err = r.GrantConsent(txId(), owner, []byte("hash"), duration(10))
	assert.Nil(t, err, "wrong grant error")

	for {
		_, err := r.SubmitItem(txId(), owner, submitArguments("Qm"))
		assert.Nil(t, err, "wrong submit error at: %d", r.Height())

		if r.Height() >= 11 {
			break
		}
		_, err = r.Tick()
		assert.Nil(t, err, "wrong tick error")
	}

	_, err = r.Tick()
	assert.Nil(t, err, "wrong tick error")
	assert.Equal(t, uint64(12), r.Height(), "wrong final height")

	_, err = r.SubmitItem(txId(), owner, submitArguments("Qm"))
	assert.Equal(t, fault.ErrConsentExpired, err, "wrong error after window")

	items, err := r.ActiveItems(owner)
	assert.Nil(t, err, "wrong active items error")
	assert.Equal(t, 11, len(items), "wrong item count")
}

func TestClockPersists(t *testing.T) {
	r, db, sink := setupRuntime(t)
	defer teardownRuntime(db)

	for i := 0; i < 5; i += 1 {
		_, err := r.Tick()
		assert.Nil(t, err, "wrong tick error")
	}

	restarted := shadow.New(logger.New(fixtures.LogCategory), db, sink, testLimits)
	assert.Equal(t, uint64(5), restarted.Height(), "wrong height after restart")
	assert.Equal(t, testLimits, restarted.Limits(), "wrong limits")
}

func TestConcurrentSubmit(t *testing.T) {
	r, db, sink := setupRuntime(t)
	defer teardownRuntime(db)

	owner := fixtures.Account(1)
	_, err := r.GrantConsent(txId(), owner, []byte("hash"), nil)
	assert.Nil(t, err, "wrong grant error")

	const workers = 10
	const perWorker = 15

	var wg sync.WaitGroup
	results := make(chan error, workers*perWorker)
	for w := 0; w < workers; w += 1 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i += 1 {
				_, err := r.SubmitItem(txId(), owner, submitArguments(fmt.Sprintf("Qm-%d-%d", w, i)))
				results <- err
			}
		}(w)
	}
	wg.Wait()
	close(results)

	ok := 0
	full := 0
	for err := range results {
		switch err {
		case nil:
			ok += 1
		case fault.ErrTooManyItems:
			full += 1
		default:
			t.Errorf("unexpected error: %s", err)
		}
	}
	assert.Equal(t, testLimits.MaxItemsPerAccount, ok, "wrong success count")
	assert.Equal(t, workers*perWorker-testLimits.MaxItemsPerAccount, full, "wrong rejection count")

	items, err := r.ActiveItems(owner)
	assert.Nil(t, err, "wrong active items error")
	assert.Equal(t, testLimits.MaxItemsPerAccount, len(items), "wrong item count")

	// grant plus one event per stored item
	assert.Equal(t, 1+testLimits.MaxItemsPerAccount, len(sink.kinds()), "wrong event count")
}
