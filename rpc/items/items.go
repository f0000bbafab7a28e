// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package items

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/record"
	"github.com/bitmark-inc/shadowd/rpc/ratelimit"
	"github.com/bitmark-inc/shadowd/shadow"
)

// Items
// -----

const (
	rateLimitItems = 200
	rateBurstItems = 100
)

// Items - type for the RPC
type Items struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Handler   shadow.Handler
	IsTesting bool
}

// Info - an item as returned to clients
type Info struct {
	Id           digest.Digest   `json:"id"`
	Cid          record.HexBytes `json:"cid"`
	EncryptedKey record.HexBytes `json:"encryptedKey"`
	Timestamp    uint64          `json:"timestamp"`
	Source       ledger.Source   `json:"source"`
	Metadata     record.HexBytes `json:"metadata"`
	Deleted      bool            `json:"deleted"`
}

// New - create the items RPC handler
func New(log *logger.L, handler shadow.Handler, isTesting bool) *Items {
	return &Items{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitItems, rateBurstItems),
		Handler:   handler,
		IsTesting: isTesting,
	}
}

// Item submit
// -----------

// SubmitReply - result of a submit
type SubmitReply struct {
	TxId digest.Digest `json:"txId"`
	Id   digest.Digest `json:"id"`
}

// Submit - append a signed item to the owner's ledger
func (items *Items) Submit(arguments *record.SubmitItem, reply *SubmitReply) error {
	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	txId, err := items.verify(arguments)
	if nil != err {
		return err
	}

	items.Log.Infof("Items.Submit: owner: %s  cid: %x", arguments.Owner, arguments.Cid)

	id, err := items.Handler.SubmitItem(txId, arguments.Owner, &ledger.SubmitArguments{
		Cid:          arguments.Cid,
		EncryptedKey: arguments.EncryptedKey,
		Source:       arguments.Source,
		Metadata:     arguments.Metadata,
	})
	if nil != err {
		return err
	}

	reply.TxId = txId
	reply.Id = id
	return nil
}

// Item delete
// -----------

// DeleteReply - result of a delete
type DeleteReply struct {
	TxId digest.Digest `json:"txId"`
}

// Delete - tombstone one of the owner's items
func (items *Items) Delete(arguments *record.DeleteItem, reply *DeleteReply) error {
	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	txId, err := items.verify(arguments)
	if nil != err {
		return err
	}

	items.Log.Infof("Items.Delete: owner: %s  id: %v", arguments.Owner, arguments.ItemId)

	err = items.Handler.DeleteItem(txId, arguments.Owner, arguments.ItemId)
	if nil != err {
		return err
	}

	reply.TxId = txId
	return nil
}

// Active items
// ------------

// ActiveArguments - arguments for RPC
type ActiveArguments struct {
	Owner *account.Account `json:"owner"`
}

// ActiveReply - the items of an owner that are not deleted
type ActiveReply struct {
	Items []Info `json:"items"`
}

// Active - list the owner's items that are not deleted
func (items *Items) Active(arguments *ActiveArguments, reply *ActiveReply) error {
	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	if nil == arguments.Owner {
		return fault.ErrMissingOwner
	}

	list, err := items.Handler.ActiveItems(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Items = make([]Info, len(list))
	for i := range list {
		reply.Items[i] = toInfo(&list[i])
	}
	return nil
}

// Single item
// -----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Owner *account.Account `json:"owner"`
	Id    digest.Digest    `json:"id"`
}

// GetReply - an item, possibly deleted
type GetReply struct {
	Item Info `json:"item"`
}

// Get - fetch one item of the owner, including a deleted one
func (items *Items) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(items.Limiter); nil != err {
		return err
	}

	if nil == arguments.Owner {
		return fault.ErrMissingOwner
	}

	item, err := items.Handler.Item(arguments.Owner, arguments.Id)
	if nil != err {
		return err
	}

	reply.Item = toInfo(item)
	return nil
}

// check the network and signature of a command and return its id
func (items *Items) verify(command record.Command) (digest.Digest, error) {
	owner := command.GetOwner()
	if nil == owner {
		return digest.Digest{}, fault.ErrMissingOwner
	}
	if owner.IsTesting() != items.IsTesting {
		return digest.Digest{}, fault.ErrWrongNetworkForPublicKey
	}

	packed, err := command.Pack()
	if nil != err {
		return digest.Digest{}, err
	}
	return packed.MakeId(), nil
}

func toInfo(item *ledger.Item) Info {
	return Info{
		Id:           item.Id,
		Cid:          item.Cid.Bytes(),
		EncryptedKey: item.EncryptedKey.Bytes(),
		Timestamp:    item.Timestamp,
		Source:       item.Source,
		Metadata:     item.Metadata.Bytes(),
		Deleted:      item.Deleted,
	}
}
