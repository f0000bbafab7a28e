// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - per-account bounded list of shadow items
//
// items are appended in submission order and never reordered;
// deletion only sets a tombstone so a slot, once used, stays used
package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/bounded"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/storage"
)

// ConsentChecker - decides whether an account may submit at now
type ConsentChecker interface {
	Check(trx storage.Transaction, who *account.Account, now uint64) error
}

// Limits - capacity and length bounds
type Limits struct {
	MaxItemsPerAccount int
	MaxCidLength       int
	MaxKeyLength       int
	MaxMetadataLength  int
}

// SubmitArguments - the fields of a new item as received
type SubmitArguments struct {
	Cid          []byte
	EncryptedKey []byte
	Source       uint8
	Metadata     []byte
}

// Ledger - the item lists of all accounts
type Ledger struct {
	log       *logger.L
	nextCount *storage.PoolHandle
	count     *storage.PoolHandle
	list      *storage.PoolHandle
	index     *storage.PoolHandle
	checker   ConsentChecker
	limits    Limits
}

// New - create a ledger over the item pools
func New(log *logger.L, pools *storage.Pools, checker ConsentChecker, limits Limits) *Ledger {
	return &Ledger{
		log:       log,
		nextCount: pools.ItemNextCount,
		count:     pools.ItemCount,
		list:      pools.ItemList,
		index:     pools.ItemIndex,
		checker:   checker,
		limits:    limits,
	}
}

// Submit - append a new item for who
//
// all checks run before the first write: consent, field lengths
// (cid, key, metadata), source and capacity
func (l *Ledger) Submit(trx storage.Transaction, sink event.Sink, who *account.Account, arguments *SubmitArguments, now uint64) (digest.Digest, error) {

	err := l.checker.Check(trx, who, now)
	if nil != err {
		return digest.Digest{}, err
	}

	cid, err := bounded.New(arguments.Cid, l.limits.MaxCidLength, fault.ErrCidTooLong)
	if nil != err {
		return digest.Digest{}, err
	}
	encryptedKey, err := bounded.New(arguments.EncryptedKey, l.limits.MaxKeyLength, fault.ErrKeyTooLong)
	if nil != err {
		return digest.Digest{}, err
	}
	metadata, err := bounded.New(arguments.Metadata, l.limits.MaxMetadataLength, fault.ErrMetadataTooLong)
	if nil != err {
		return digest.Digest{}, err
	}

	source, err := SourceFromTag(arguments.Source)
	if nil != err {
		return digest.Digest{}, err
	}

	owner := who.Bytes()

	length, _ := trx.GetN(l.count, owner)
	if length >= uint64(l.limits.MaxItemsPerAccount) {
		return digest.Digest{}, fault.ErrTooManyItems
	}

	// checks complete, from here on only writes

	sequence, _ := trx.GetN(l.nextCount, owner)
	trx.PutN(l.nextCount, owner, sequence+1)

	item := &Item{
		Id:           DeriveId(who, sequence, cid.Bytes()),
		Cid:          cid,
		EncryptedKey: encryptedKey,
		Timestamp:    now,
		Source:       source,
		Metadata:     metadata,
		Deleted:      false,
	}

	trx.Put(l.list, listKey(owner, length), item.pack())
	trx.PutN(l.index, indexKey(owner, item.Id), length)
	trx.PutN(l.count, owner, length+1)

	l.log.Debugf("submit: %s  id: %s  position: %d", who, item.Id, length)

	sink.Deposit(event.ShadowItemStored{
		Account: who,
		ItemId:  item.Id,
		Cid:     cid.Bytes(),
		Source:  source.String(),
	})

	return item.Id, nil
}

// Delete - tombstone an item of who
//
// ids belonging to other accounts and already deleted items
// are reported as not found
func (l *Ledger) Delete(trx storage.Transaction, sink event.Sink, who *account.Account, id digest.Digest) error {

	owner := who.Bytes()

	position, found := trx.GetN(l.index, indexKey(owner, id))
	if !found {
		return fault.ErrItemNotFound
	}

	key := listKey(owner, position)
	item, err := unpackItem(trx.Get(l.list, key))
	if nil != err {
		l.log.Criticalf("delete: %s  id: %s  corrupt item: %s", who, id, err)
		return err
	}
	if item.Deleted {
		return fault.ErrItemNotFound
	}

	item.Deleted = true
	trx.Put(l.list, key, item.pack())

	l.log.Debugf("delete: %s  id: %s  position: %d", who, id, position)

	sink.Deposit(event.ShadowItemDeleted{
		Account: who,
		ItemId:  id,
	})
	return nil
}

// ActiveItems - the committed items of who that are not deleted,
// in submission order
func (l *Ledger) ActiveItems(who *account.Account) ([]Item, error) {

	items := make([]Item, 0)

	cursor := l.list.NewPrefixCursor(who.Bytes())
	err := cursor.Map(func(key []byte, value []byte) error {
		item, err := unpackItem(value)
		if nil != err {
			return err
		}
		if !item.Deleted {
			items = append(items, *item)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return items, nil
}

// Item - a committed item of who, including a deleted one
func (l *Ledger) Item(who *account.Account, id digest.Digest) (*Item, error) {

	owner := who.Bytes()

	position, found := l.index.GetN(indexKey(owner, id))
	if !found {
		return nil, fault.ErrItemNotFound
	}

	buffer := l.list.Get(listKey(owner, position))
	if nil == buffer {
		return nil, fault.ErrItemNotFound
	}
	return unpackItem(buffer)
}

// Count - committed ledger length of who including deleted items
func (l *Ledger) Count(who *account.Account) uint64 {
	n, _ := l.count.GetN(who.Bytes())
	return n
}

// NextSequence - committed value of the identifier sequence of who
func (l *Ledger) NextSequence(who *account.Account) uint64 {
	n, _ := l.nextCount.GetN(who.Bytes())
	return n
}

// owner ++ position
func listKey(owner []byte, position uint64) []byte {
	key := make([]byte, len(owner)+8)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], position)
	return key
}

// owner ++ item id
func indexKey(owner []byte, id digest.Digest) []byte {
	key := make([]byte, 0, len(owner)+digest.Length)
	key = append(key, owner...)
	return append(key, id[:]...)
}
