// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - the logical height used as "now" by ledger commands
//
// the height is persisted and never decreases; it is advanced by
// a Ticker, or by hand on a local chain
package clock

import (
	"sync/atomic"

	"github.com/bitmark-inc/shadowd/storage"
)

var heightKey = []byte("height")

// Clock - current logical height
type Clock struct {
	pool   *storage.PoolHandle
	height uint64
}

// New - load the last committed height from the pool
func New(pool *storage.PoolHandle) *Clock {
	height, _ := pool.GetN(heightKey)
	return &Clock{
		pool:   pool,
		height: height,
	}
}

// Height - current committed height
func (c *Clock) Height() uint64 {
	return atomic.LoadUint64(&c.height)
}

// Stage - write the next height into a transaction and return it
//
// the in-memory height does not change until Set is called
// after the transaction has committed
func (c *Clock) Stage(trx storage.Transaction) uint64 {
	next := c.Height() + 1
	trx.PutN(c.pool, heightKey, next)
	return next
}

// Set - record a committed height, lower values are ignored
func (c *Clock) Set(height uint64) {
	for {
		current := atomic.LoadUint64(&c.height)
		if height <= current {
			return
		}
		if atomic.CompareAndSwapUint64(&c.height, current, height) {
			return
		}
	}
}
