// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/shadowd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "ShadowItemStored",
			Parameters: [][]byte{[]byte("p1")},
		},
		{
			Command:    "ShadowItemDeleted",
			Parameters: [][]byte{[]byte("p2")},
		},
		{
			Command:    "ConsentRevoked",
			Parameters: nil,
		},
	}

	q := messagebus.NewQueue(10)
	for _, item := range items {
		if !q.Send(item.Command, item.Parameters...) {
			t.Fatalf("send: %q failed", item.Command)
		}
	}

	queue := q.Chan()
	for _, item := range items {
		received := <-queue
		if received.Command != item.Command {
			t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
		}
		if len(received.Parameters) != len(item.Parameters) {
			t.Errorf("parameters: %d  expected: %d", len(received.Parameters), len(item.Parameters))
			continue
		}
		for i, p := range item.Parameters {
			if !bytes.Equal(p, received.Parameters[i]) {
				t.Errorf("parameter[%d]: %q  expected: %q", i, received.Parameters[i], p)
			}
		}
	}
}

func TestQueueFull(t *testing.T) {

	q := messagebus.NewQueue(2)

	if !q.Send("c1") || !q.Send("c2") {
		t.Fatal("sends within capacity failed")
	}
	if q.Send("c3") {
		t.Error("send to full queue succeeded")
	}
	if 1 != q.Dropped() {
		t.Errorf("dropped: %d  expected: 1", q.Dropped())
	}

	<-q.Chan()
	if !q.Send("c4") {
		t.Error("send after read failed")
	}
}
