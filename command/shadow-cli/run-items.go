// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runItems(c *cli.Context) error {

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

	response, err := client.Active(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c.String("owner"), c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	id, err := checkItemId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Item(owner, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
