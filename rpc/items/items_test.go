// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package items_test

import (
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/bounded"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/fixtures"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/record"
	"github.com/bitmark-inc/shadowd/rpc/items"
	"github.com/bitmark-inc/shadowd/shadow/mocks"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockHandler, *items.Items) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	h := mocks.NewMockHandler(ctl)
	i := items.New(logger.New(fixtures.LogCategory), h, true)
	return ctl, h, i
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func mustBound(data string) bounded.Bytes {
	b, err := bounded.New([]byte(data), 1000, fault.ErrCidTooLong)
	if nil != err {
		panic(err)
	}
	return b
}

func TestSubmit(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	key := fixtures.PrivateKey(1)
	arguments := record.SubmitItem{
		Cid:          record.HexBytes("Qm123"),
		EncryptedKey: record.HexBytes{1, 2, 3},
		Source:       1,
		Metadata:     record.HexBytes("meta"),
		Owner:        key.Account(),
		Nonce:        4,
	}
	packed, err := record.Sign(key, &arguments)
	assert.Nil(t, err, "sign")

	txId := packed.MakeId()
	itemId := digest.New([]byte("item"))

	h.EXPECT().SubmitItem(txId, key.Account(), &ledger.SubmitArguments{
		Cid:          []byte("Qm123"),
		EncryptedKey: []byte{1, 2, 3},
		Source:       1,
		Metadata:     []byte("meta"),
	}).Return(itemId, nil).Times(1)

	var reply items.SubmitReply
	err = i.Submit(&arguments, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, txId, reply.TxId, "wrong txId")
	assert.Equal(t, itemId, reply.Id, "wrong item id")
}

func TestSubmitRejected(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	key := fixtures.PrivateKey(1)

	unsigned := record.SubmitItem{
		Cid:   record.HexBytes("Qm123"),
		Owner: key.Account(),
	}

	liveKey, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "live key")
	live := record.SubmitItem{
		Cid:   record.HexBytes("Qm123"),
		Owner: liveKey.Account(),
	}
	_, err = record.Sign(liveKey, &live)
	assert.Nil(t, err, "sign live")

	tests := []struct {
		arguments record.SubmitItem
		err       error
	}{
		{unsigned, fault.ErrInvalidSignature},
		{record.SubmitItem{Cid: record.HexBytes("Qm123")}, fault.ErrMissingOwner},
		{live, fault.ErrWrongNetworkForPublicKey},
	}

	h.EXPECT().SubmitItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for n, test := range tests {
		var reply items.SubmitReply
		err := i.Submit(&test.arguments, &reply)
		assert.Equal(t, test.err, err, "%d: wrong error", n)
	}
}

func TestSubmitHandlerError(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	key := fixtures.PrivateKey(2)
	arguments := record.SubmitItem{
		Cid:   record.HexBytes("Qm123"),
		Owner: key.Account(),
	}
	_, err := record.Sign(key, &arguments)
	assert.Nil(t, err, "sign")

	h.EXPECT().SubmitItem(gomock.Any(), key.Account(), gomock.Any()).Return(digest.Digest{}, fault.ErrNoConsent).Times(1)

	var reply items.SubmitReply
	err = i.Submit(&arguments, &reply)
	assert.Equal(t, fault.ErrNoConsent, err, "wrong error")
	assert.True(t, reply.Id.IsZero(), "reply was filled")
}

func TestDelete(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	key := fixtures.PrivateKey(3)
	itemId := digest.New([]byte("item"))
	arguments := record.DeleteItem{
		ItemId: itemId,
		Owner:  key.Account(),
		Nonce:  1,
	}
	packed, err := record.Sign(key, &arguments)
	assert.Nil(t, err, "sign")

	h.EXPECT().DeleteItem(packed.MakeId(), key.Account(), itemId).Return(nil).Times(1)

	var reply items.DeleteReply
	err = i.Delete(&arguments, &reply)
	assert.Nil(t, err, "wrong Delete")
	assert.Equal(t, packed.MakeId(), reply.TxId, "wrong txId")

	h.EXPECT().DeleteItem(gomock.Any(), key.Account(), itemId).Return(fault.ErrItemNotFound).Times(1)
	err = i.Delete(&arguments, &reply)
	assert.Equal(t, fault.ErrItemNotFound, err, "second delete")
}

func TestActive(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	owner := fixtures.Account(4)
	item := ledger.Item{
		Id:           digest.New([]byte("one")),
		Cid:          mustBound("Qm123"),
		EncryptedKey: mustBound("\x0a\x0b"),
		Timestamp:    7,
		Source:       ledger.Twitter,
		Metadata:     mustBound("m"),
	}

	h.EXPECT().ActiveItems(owner).Return([]ledger.Item{item}, nil).Times(1)

	var reply items.ActiveReply
	err := i.Active(&items.ActiveArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Active")
	assert.Equal(t, []items.Info{
		{
			Id:           item.Id,
			Cid:          record.HexBytes("Qm123"),
			EncryptedKey: record.HexBytes{0x0a, 0x0b},
			Timestamp:    7,
			Source:       ledger.Twitter,
			Metadata:     record.HexBytes("m"),
			Deleted:      false,
		},
	}, reply.Items, "wrong items")

	err = i.Active(&items.ActiveArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingOwner, err, "missing owner")
}

func TestActiveEmpty(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	owner := fixtures.Account(4)
	h.EXPECT().ActiveItems(owner).Return(nil, nil).Times(1)

	var reply items.ActiveReply
	err := i.Active(&items.ActiveArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Active")
	assert.NotNil(t, reply.Items, "nil list")
	assert.Equal(t, 0, len(reply.Items), "wrong count")
}

func TestGet(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	owner := fixtures.Account(5)
	id := digest.New([]byte("gone"))
	item := ledger.Item{
		Id:      id,
		Cid:     mustBound("Qm9"),
		Source:  ledger.GitHub,
		Deleted: true,
	}

	h.EXPECT().Item(owner, id).Return(&item, nil).Times(1)

	var reply items.GetReply
	err := i.Get(&items.GetArguments{Owner: owner, Id: id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, id, reply.Item.Id, "wrong id")
	assert.Equal(t, record.HexBytes("Qm9"), reply.Item.Cid, "wrong cid")
	assert.True(t, reply.Item.Deleted, "tombstone not reported")

	other := digest.New([]byte("other"))
	h.EXPECT().Item(owner, other).Return(nil, fault.ErrItemNotFound).Times(1)
	err = i.Get(&items.GetArguments{Owner: owner, Id: other}, &reply)
	assert.Equal(t, fault.ErrItemNotFound, err, "unknown id")
}

func TestBinaryItemFields(t *testing.T) {
	ctl, h, i := setup(t)
	defer teardown(ctl)

	key := fixtures.PrivateKey(6)
	cid := []byte{0x12, 0x20, 0xff, 0xfe, 0x80}
	metadata := []byte{0xc3, 0x28, 0x00}

	arguments := record.SubmitItem{
		Cid:          cid,
		EncryptedKey: record.HexBytes{0x01},
		Source:       0,
		Metadata:     metadata,
		Owner:        key.Account(),
		Nonce:        9,
	}
	_, err := record.Sign(key, &arguments)
	assert.Nil(t, err, "sign")

	// as the client sends it
	buffer, err := json.Marshal(arguments)
	assert.Nil(t, err, "marshal arguments")
	var received record.SubmitItem
	err = json.Unmarshal(buffer, &received)
	assert.Nil(t, err, "unmarshal arguments")

	itemId := digest.New([]byte("binary"))
	h.EXPECT().SubmitItem(gomock.Any(), key.Account(), &ledger.SubmitArguments{
		Cid:          cid,
		EncryptedKey: []byte{0x01},
		Source:       0,
		Metadata:     metadata,
	}).Return(itemId, nil).Times(1)

	var submitReply items.SubmitReply
	err = i.Submit(&received, &submitReply)
	assert.Nil(t, err, "wrong Submit")

	item := ledger.Item{
		Id:       itemId,
		Cid:      mustBound(string(cid)),
		Source:   ledger.GitHub,
		Metadata: mustBound(string(metadata)),
	}
	h.EXPECT().Item(key.Account(), itemId).Return(&item, nil).Times(1)

	var reply items.GetReply
	err = i.Get(&items.GetArguments{Owner: key.Account(), Id: itemId}, &reply)
	assert.Nil(t, err, "wrong Get")

	buffer, err = json.Marshal(reply)
	assert.Nil(t, err, "marshal reply")
	assert.Contains(t, string(buffer), `"cid":"1220fffe80"`, "cid not hex")
	assert.Contains(t, string(buffer), `"metadata":"c32800"`, "metadata not hex")

	var decoded items.GetReply
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal reply")
	assert.Equal(t, cid, []byte(decoded.Item.Cid), "wrong cid")
	assert.Equal(t, metadata, []byte(decoded.Item.Metadata), "wrong metadata")
}
