// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/shadowd/rpc/events"
)

// Events - read a page of the event journal
func (client *Client) Events(start uint64, count int) (*events.ListReply, error) {

	arguments := events.ListArguments{
		Start: start,
		Count: count,
	}

	client.printJson("Events Request", arguments)

	var reply events.ListReply
	if err := client.client.Call("Events.List", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
