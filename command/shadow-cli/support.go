// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shadowd/command/shadow-cli/configuration"
	"github.com/bitmark-inc/shadowd/command/shadow-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	connection := m.config.Connections[m.connectionOffset]
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", connection)
	}
	return rpccalls.NewClient(m.testnet, connection, m.verbose, m.e)
}

// the global identity, or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// decrypt the key of the selected identity
func signer(c *cli.Context, m *metadata) (*configuration.Private, error) {
	name, err := identityName(c, m.config)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}
	return unlockIdentity(c.GlobalString("password"), name, m.config)
}

// write a reply as indented JSON without HTML escaping
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}
