// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shadowd/rpc/ratelimit"
	"github.com/bitmark-inc/shadowd/shadow"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 100
)

// Events - type for the RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handler shadow.Handler
}

// New - create the events RPC handler
func New(log *logger.L, handler shadow.Handler) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Handler: handler,
	}
}

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"` // first journal entry
	Count int    `json:"count"`        // number of entries
}

// ListReply - a page of the event journal
type ListReply struct {
	Events    []shadow.JournalEntry `json:"events"`
	NextStart uint64                `json:"nextStart,string"`
}

// List - read the committed event journal in order
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(e.Limiter, arguments.Count, shadow.MaximumEventCount); nil != err {
		return err
	}

	e.Log.Debugf("Events.List: start: %d  count: %d", arguments.Start, arguments.Count)

	entries, next, err := e.Handler.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = entries
	reply.NextStart = next
	return nil
}
