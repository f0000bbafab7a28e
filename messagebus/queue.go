// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/shadowd/counter"
)

// DefaultQueueSize - number of messages buffered before dropping
const DefaultQueueSize = 1000

// Message - a command and its parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a bounded queue that never blocks the sender
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// NewQueue - create a queue of the given size
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message
//
// returns false and counts the message as dropped if the queue is full
func (q *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case q.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		q.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - number of messages discarded because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
