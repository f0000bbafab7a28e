// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/record"
	"github.com/bitmark-inc/shadowd/rpc/items"
)

// SubmitData - parameters for a new shadow item
type SubmitData struct {
	Cid          []byte
	EncryptedKey []byte
	Source       ledger.Source
	Metadata     []byte
	Owner        *account.PrivateKey
}

// DeleteData - parameters to tombstone an item
type DeleteData struct {
	Id    digest.Digest
	Owner *account.PrivateKey
}

// Submit - sign and send a submit item command
func (client *Client) Submit(data *SubmitData) (*items.SubmitReply, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	submit := &record.SubmitItem{
		Cid:          data.Cid,
		EncryptedKey: data.EncryptedKey,
		Source:       data.Source.Tag(),
		Metadata:     data.Metadata,
		Owner:        data.Owner.Account(),
		Nonce:        nonce,
	}
	if _, err := record.Sign(data.Owner, submit); nil != err {
		return nil, err
	}

	client.printJson("Submit Request", submit)

	var reply items.SubmitReply
	if err := client.client.Call("Items.Submit", submit, &reply); nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return &reply, nil
}

// Delete - sign and send a delete item command
func (client *Client) Delete(data *DeleteData) (*items.DeleteReply, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	del := &record.DeleteItem{
		ItemId: data.Id,
		Owner:  data.Owner.Account(),
		Nonce:  nonce,
	}
	if _, err := record.Sign(data.Owner, del); nil != err {
		return nil, err
	}

	client.printJson("Delete Request", del)

	var reply items.DeleteReply
	if err := client.client.Call("Items.Delete", del, &reply); nil != err {
		return nil, err
	}

	client.printJson("Delete Reply", reply)

	return &reply, nil
}

// Active - list the items of an owner that are not deleted
func (client *Client) Active(owner *account.Account) (*items.ActiveReply, error) {

	arguments := items.ActiveArguments{
		Owner: owner,
	}

	client.printJson("Active Request", arguments)

	var reply items.ActiveReply
	if err := client.client.Call("Items.Active", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Item - fetch one item, including a deleted one
func (client *Client) Item(owner *account.Account, id digest.Digest) (*items.GetReply, error) {

	arguments := items.GetArguments{
		Owner: owner,
		Id:    id,
	}

	client.printJson("Item Request", arguments)

	var reply items.GetReply
	if err := client.client.Call("Items.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
