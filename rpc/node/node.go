// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shadowd/counter"
	"github.com/bitmark-inc/shadowd/rpc/ratelimit"
	"github.com/bitmark-inc/shadowd/shadow"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Chain     string
	PublicKey []byte
	Handler   shadow.Handler
	counter   *counter.Counter
}

// New - create the node RPC handler
//
// publicKey is the event publisher's curve key, empty when publishing is disabled
func New(log *logger.L, handler shadow.Handler, start time.Time, chainName string, version string, publicKey []byte, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Chain:     chainName,
		PublicKey: publicKey,
		Handler:   handler,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string     `json:"chain"`
	Height    uint64     `json:"height"`
	RPCs      uint64     `json:"rpcs"`
	Limits    LimitsInfo `json:"limits"`
	Version   string     `json:"version"`
	Uptime    string     `json:"uptime"`
	PublicKey string     `json:"publicKey"`
}

// LimitsInfo - the configured bounds of the ledger
type LimitsInfo struct {
	MaxItemsPerAccount   int `json:"maxItemsPerAccount"`
	MaxCidLength         int `json:"maxCidLength"`
	MaxKeyLength         int `json:"maxKeyLength"`
	MaxMetadataLength    int `json:"maxMetadataLength"`
	MaxMessageHashLength int `json:"maxMessageHashLength"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	limits := node.Handler.Limits()

	reply.Chain = node.Chain
	reply.Height = node.Handler.Height()
	reply.RPCs = node.counter.Uint64()
	reply.Limits = LimitsInfo{
		MaxItemsPerAccount:   limits.MaxItemsPerAccount,
		MaxCidLength:         limits.MaxCidLength,
		MaxKeyLength:         limits.MaxKeyLength,
		MaxMetadataLength:    limits.MaxMetadataLength,
		MaxMessageHashLength: limits.MaxMessageHashLength,
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if 0 != len(node.PublicKey) {
		reply.PublicKey = hex.EncodeToString(node.PublicKey)
	}
	return nil
}
