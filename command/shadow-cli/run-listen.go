// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shadowd/zmqutil"
)

const (
	heartbeatKind = "heartbeat"
)

type publishedEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func runListen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if "" == m.config.Broadcast {
		return ErrRequiredBroadcast
	}
	limit := c.Int("count")

	// the publisher key is only available from the node itself
	client, err := connect(m)
	if nil != err {
		return err
	}
	info, err := client.GetShadowInfo()
	client.Close()
	if nil != err {
		return err
	}

	publicKey, err := hex.DecodeString(info.PublicKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "broadcast: %s\n", m.config.Broadcast)
		fmt.Fprintf(m.e, "public key: %x\n", publicKey)
	}

	socket, err := zmqutil.NewSubscriber(m.config.Broadcast, publicKey, 0)
	if nil != err {
		return err
	}
	defer socket.Close()

	for n := 0; 0 == limit || n < limit; {
		frames, err := socket.RecvMessageBytes(0)
		if nil != err {
			return err
		}
		if len(frames) < 2 {
			continue
		}

		kind := string(frames[0])
		if heartbeatKind == kind {
			if m.verbose {
				fmt.Fprintf(m.e, "heartbeat: %s\n", frames[1])
			}
			continue
		}

		err = printJson(m.w, publishedEvent{
			Event: kind,
			Data:  json.RawMessage(frames[1]),
		})
		if nil != err {
			return err
		}
		n += 1
	}

	return nil
}
