// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shadowd/command/shadow-cli/rpccalls"
)

func runGrant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkMessageHash(c.String("hash"))
	if nil != err {
		return err
	}

	// an omitted duration never expires, zero expires after the current tick
	var duration *uint64
	if c.IsSet("duration") {
		d := c.Uint64("duration")
		duration = &d
	}

	private, err := signer(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "hash: %x\n", hash)
		if nil != duration {
			fmt.Fprintf(m.e, "duration: %d\n", *duration)
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Grant(&rpccalls.GrantData{
		MessageHash: hash,
		Duration:    duration,
		Owner:       private.PrivateKey,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRevoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	private, err := signer(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Revoke(private.PrivateKey)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runConsent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"), c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Consent(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
