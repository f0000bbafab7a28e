// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/chain"
	"github.com/bitmark-inc/shadowd/counter"
	"github.com/bitmark-inc/shadowd/rpc/consent"
	"github.com/bitmark-inc/shadowd/rpc/events"
	"github.com/bitmark-inc/shadowd/rpc/items"
	"github.com/bitmark-inc/shadowd/rpc/node"
	"github.com/bitmark-inc/shadowd/shadow"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, handler shadow.Handler, chainName string, version string, publicKey []byte, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	isTesting := chain.IsTesting(chainName)

	server := rpc.NewServer()

	_ = server.Register(items.New(log, handler, isTesting))
	_ = server.Register(consent.New(log, handler, isTesting))
	_ = server.Register(events.New(log, handler))
	_ = server.Register(node.New(log, handler, start, chainName, version, publicKey, rpcCount))

	return server
}
