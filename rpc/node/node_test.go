// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shadowd/chain"
	"github.com/bitmark-inc/shadowd/counter"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/rpc/fixtures"
	"github.com/bitmark-inc/shadowd/rpc/node"
	"github.com/bitmark-inc/shadowd/shadow"
	"github.com/bitmark-inc/shadowd/shadow/mocks"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandler(ctl)

	now := time.Now()
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		h,
		now,
		chain.Testing,
		"100",
		[]byte{0x01, 0xff},
		&c,
	)

	h.EXPECT().Height().Return(uint64(42)).Times(1)
	h.EXPECT().Limits().Return(shadow.Limits{
		Limits: ledger.Limits{
			MaxItemsPerAccount: 100,
			MaxCidLength:       100,
			MaxKeyLength:       512,
			MaxMetadataLength:  256,
		},
		MaxMessageHashLength: 64,
	}).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, uint64(42), reply.Height, "wrong height")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.Equal(t, "01ff", reply.PublicKey, "wrong public key")
	assert.Equal(t, 100, reply.Limits.MaxItemsPerAccount, "wrong item limit")
	assert.Equal(t, 64, reply.Limits.MaxMessageHashLength, "wrong hash limit")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestNodeInfoWithoutPublisher(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandler(ctl)
	c := counter.Counter(0)

	n := node.New(logger.New(fixtures.LogCategory), h, time.Now(), chain.Shadow, "1", nil, &c)

	h.EXPECT().Height().Return(uint64(0)).Times(1)
	h.EXPECT().Limits().Return(shadow.Limits{}).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Shadow, reply.Chain, "wrong chain")
	assert.Equal(t, "", reply.PublicKey, "wrong empty public key")
}
