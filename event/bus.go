// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/messagebus"
)

// BusSink - forwards events onto a message bus queue as JSON
type BusSink struct {
	log   *logger.L
	queue *messagebus.Queue
}

// NewBusSink - create a sink for a queue
func NewBusSink(log *logger.L, queue *messagebus.Queue) *BusSink {
	return &BusSink{
		log:   log,
		queue: queue,
	}
}

// Deposit - queue an event, dropping it if the queue is full
func (s *BusSink) Deposit(e Event) {
	data, err := json.Marshal(e)
	if nil != err {
		s.log.Errorf("encode event: %s  error: %s", e.Kind(), err)
		return
	}
	if !s.queue.Send(e.Kind(), data) {
		s.log.Warnf("queue full, dropped event: %s", e.Kind())
	}
}
