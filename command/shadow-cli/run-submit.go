// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shadowd/command/shadow-cli/rpccalls"
	"github.com/bitmark-inc/shadowd/ledger"
)

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	cid, err := checkCid(c.String("cid"))
	if nil != err {
		return err
	}

	encryptedKey, err := checkEncryptedKey(c.String("encrypted-key"))
	if nil != err {
		return err
	}

	source, err := ledger.SourceFromString(c.String("source"))
	if nil != err {
		return err
	}

	meta := c.String("metadata")

	private, err := signer(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "cid: %s\n", cid)
		fmt.Fprintf(m.e, "source: %s\n", source)
		fmt.Fprintf(m.e, "metadata: %s\n", meta)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(&rpccalls.SubmitData{
		Cid:          []byte(cid),
		EncryptedKey: encryptedKey,
		Source:       source,
		Metadata:     []byte(meta),
		Owner:        private.PrivateKey,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkItemId(c.String("id"))
	if nil != err {
		return err
	}

	private, err := signer(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Delete(&rpccalls.DeleteData{
		Id:    id,
		Owner: private.PrivateKey,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
