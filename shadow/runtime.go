// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shadow - serialised execution of ledger commands
//
// every state changing command runs under one lock inside one storage
// transaction, reading the logical clock once; a failed command
// leaves no state and emits no events
package shadow

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/clock"
	"github.com/bitmark-inc/shadowd/consent"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/storage"
)

var eventCountKey = []byte("events")

// Limits - all configurable bounds
type Limits struct {
	ledger.Limits
	MaxMessageHashLength int
}

// Handler - the commands and queries of a runtime
type Handler interface {
	SubmitItem(txId digest.Digest, who *account.Account, arguments *ledger.SubmitArguments) (digest.Digest, error)
	DeleteItem(txId digest.Digest, who *account.Account, id digest.Digest) error
	GrantConsent(txId digest.Digest, who *account.Account, messageHash []byte, duration *uint64) (*consent.Record, error)
	RevokeConsent(txId digest.Digest, who *account.Account) error

	ActiveItems(who *account.Account) ([]ledger.Item, error)
	Item(who *account.Account, id digest.Digest) (*ledger.Item, error)
	Consent(who *account.Account) (*consent.Record, error)
	Events(start uint64, count int) ([]JournalEntry, uint64, error)
	Height() uint64
	Limits() Limits
}

// Runtime - owns the state of all accounts
type Runtime struct {
	sync.Mutex

	log    *logger.L
	db     *storage.Database
	clock  *clock.Clock
	gate   *consent.Gate
	ledger *ledger.Ledger
	sink   event.Sink
	limits Limits
}

// New - create a runtime over an open database
//
// committed events are passed to sink after each successful command
func New(log *logger.L, db *storage.Database, sink event.Sink, limits Limits) *Runtime {
	gate := consent.New(logger.New("consent"), db.Pool.ConsentRecords, limits.MaxMessageHashLength)
	return &Runtime{
		log:    log,
		db:     db,
		clock:  clock.New(db.Pool.Clock),
		gate:   gate,
		ledger: ledger.New(logger.New("ledger"), &db.Pool, gate, limits.Limits),
		sink:   sink,
		limits: limits,
	}
}

// the work of one command
type command func(trx storage.Transaction, sink event.Sink, now uint64) error

// run a command to completion or not at all
func (r *Runtime) execute(name string, txId digest.Digest, f command) error {
	r.Lock()
	defer r.Unlock()

	now := r.clock.Height()

	trx, err := r.db.Begin()
	if nil != err {
		r.log.Errorf("%s: begin error: %s", name, err)
		return err
	}

	if trx.Has(r.db.Pool.Transactions, txId[:]) {
		trx.Abort()
		return fault.ErrTransactionAlreadyExists
	}

	var buffer event.Buffer
	err = f(trx, &buffer, now)
	if nil != err {
		trx.Abort()
		r.log.Debugf("%s: tx: %s  error: %s", name, txId, err)
		return err
	}

	trx.PutN(r.db.Pool.Transactions, txId[:], now)

	events := buffer.Events()
	err = r.journal(trx, now, events)
	if nil != err {
		trx.Abort()
		r.log.Errorf("%s: tx: %s  journal error: %s", name, txId, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Criticalf("%s: tx: %s  commit error: %s", name, txId, err)
		return err
	}

	r.log.Infof("%s: tx: %s  height: %d", name, txId, now)

	for _, e := range events {
		r.sink.Deposit(e)
	}
	return nil
}

// append events to the journal inside the command's transaction
func (r *Runtime) journal(trx storage.Transaction, now uint64, events []event.Event) error {
	if 0 == len(events) {
		return nil
	}

	count, _ := trx.GetN(r.db.Pool.Clock, eventCountKey)
	for _, e := range events {
		data, err := event.Pack(now, e)
		if nil != err {
			return err
		}
		trx.Put(r.db.Pool.Events, countKey(count), data)
		count += 1
	}
	trx.PutN(r.db.Pool.Clock, eventCountKey, count)
	return nil
}

// SubmitItem - append an item to the ledger of who
func (r *Runtime) SubmitItem(txId digest.Digest, who *account.Account, arguments *ledger.SubmitArguments) (digest.Digest, error) {
	var id digest.Digest
	err := r.execute("submit", txId, func(trx storage.Transaction, sink event.Sink, now uint64) error {
		var err error
		id, err = r.ledger.Submit(trx, sink, who, arguments, now)
		return err
	})
	if nil != err {
		return digest.Digest{}, err
	}
	return id, nil
}

// DeleteItem - tombstone an item of who
func (r *Runtime) DeleteItem(txId digest.Digest, who *account.Account, id digest.Digest) error {
	return r.execute("delete", txId, func(trx storage.Transaction, sink event.Sink, now uint64) error {
		return r.ledger.Delete(trx, sink, who, id)
	})
}

// GrantConsent - create or replace the consent of who
func (r *Runtime) GrantConsent(txId digest.Digest, who *account.Account, messageHash []byte, duration *uint64) (*consent.Record, error) {
	var record *consent.Record
	err := r.execute("grant", txId, func(trx storage.Transaction, sink event.Sink, now uint64) error {
		var err error
		record, err = r.gate.Grant(trx, sink, who, messageHash, duration, now)
		return err
	})
	if nil != err {
		return nil, err
	}
	return record, nil
}

// RevokeConsent - remove the consent of who
func (r *Runtime) RevokeConsent(txId digest.Digest, who *account.Account) error {
	return r.execute("revoke", txId, func(trx storage.Transaction, sink event.Sink, now uint64) error {
		return r.gate.Revoke(trx, sink, who)
	})
}

// Tick - advance the logical clock by one
func (r *Runtime) Tick() (uint64, error) {
	r.Lock()
	defer r.Unlock()

	trx, err := r.db.Begin()
	if nil != err {
		return 0, err
	}
	height := r.clock.Stage(trx)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	r.clock.Set(height)
	return height, nil
}

func countKey(count uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, count)
	return key
}
