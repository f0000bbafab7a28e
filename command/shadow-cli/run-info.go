// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/urfave/cli"
)

type infoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
}

type infoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Broadcast       string         `json:"broadcast,omitempty"`
	Identities      []infoIdentity `json:"identities"`
}

// the configuration without any private data
func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info := infoConfiguration{
		DefaultIdentity: m.config.DefaultIdentity,
		TestNet:         m.config.TestNet,
		Connections:     m.config.Connections,
		Broadcast:       m.config.Broadcast,
		Identities:      make([]infoIdentity, 0, len(m.config.Identities)),
	}
	for name, id := range m.config.Identities {
		info.Identities = append(info.Identities, infoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})

	return printJson(m.w, info)
}

func runShadowdInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetShadowInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Connection string      `json:"_connection"`
		Info       interface{} `json:"info"`
	}{
		Connection: m.config.Connections[m.connectionOffset],
		Info:       response,
	})
}
