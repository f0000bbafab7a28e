// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/event"
	"github.com/bitmark-inc/shadowd/fixtures"
	"github.com/bitmark-inc/shadowd/messagebus"
	"github.com/bitmark-inc/shadowd/record"
)

func TestBuffer(t *testing.T) {
	owner := fixtures.Account(1)

	var b event.Buffer
	b.Deposit(event.ConsentRevoked{Account: owner})
	b.Deposit(event.ShadowItemDeleted{Account: owner, ItemId: digest.New([]byte("x"))})

	events := b.Events()
	assert.Equal(t, 2, len(events), "wrong event count")
	assert.Equal(t, event.ConsentRevokedKind, events[0].Kind(), "wrong first kind")
	assert.Equal(t, event.ShadowItemDeletedKind, events[1].Kind(), "wrong second kind")
}

func TestJournal(t *testing.T) {
	owner := fixtures.Account(2)
	id := digest.New([]byte("Qm123"))

	e := event.ShadowItemStored{
		Account: owner,
		ItemId:  id,
		Cid:     record.HexBytes{0x12, 0x20, 0xff, 0xfe, 0x80},
		Source:  "GitHub",
	}

	buffer, err := event.Pack(17, e)
	assert.Nil(t, err, "wrong pack error")

	entry, err := event.Unpack(buffer)
	assert.Nil(t, err, "wrong unpack error")
	assert.Equal(t, uint64(17), entry.Height, "wrong height")
	assert.Equal(t, event.ShadowItemStoredKind, entry.Kind, "wrong kind")

	var data struct {
		Account string `json:"account"`
		ItemId  string `json:"itemId"`
		Cid     string `json:"cid"`
		Source  string `json:"source"`
	}
	err = json.Unmarshal(entry.Data, &data)
	assert.Nil(t, err, "wrong data error")
	assert.Equal(t, owner.String(), data.Account, "wrong account")
	assert.Equal(t, id.String(), data.ItemId, "wrong item id")
	assert.Equal(t, "1220fffe80", data.Cid, "wrong cid")
	assert.Equal(t, "GitHub", data.Source, "wrong source")

	_, err = event.Unpack([]byte("{bad"))
	assert.NotNil(t, err, "wrong error for bad JSON")
}

func TestConsentGrantedExpiry(t *testing.T) {
	owner := fixtures.Account(3)

	buffer, err := json.Marshal(event.ConsentGranted{Account: owner, MessageHash: "6868"})
	assert.Nil(t, err, "wrong marshal error")
	assert.NotContains(t, string(buffer), "expiresAt", "expiry present without duration")

	expires := uint64(11)
	buffer, err = json.Marshal(event.ConsentGranted{Account: owner, MessageHash: "6868", ExpiresAt: &expires})
	assert.Nil(t, err, "wrong marshal error")
	assert.Contains(t, string(buffer), `"expiresAt":11`, "wrong expiry")
}

func TestBusSink(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	q := messagebus.NewQueue(1)
	s := event.NewBusSink(logger.New(fixtures.LogCategory), q)

	owner := fixtures.Account(4)
	s.Deposit(event.ConsentRevoked{Account: owner})
	s.Deposit(event.ConsentRevoked{Account: owner})

	assert.Equal(t, uint64(1), q.Dropped(), "wrong dropped count")

	m := <-q.Chan()
	assert.Equal(t, event.ConsentRevokedKind, m.Command, "wrong command")
	assert.Equal(t, 1, len(m.Parameters), "wrong parameter count")
	assert.JSONEq(t, `{"account":"`+owner.String()+`"}`, string(m.Parameters[0]), "wrong JSON")
}
