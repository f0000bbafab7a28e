// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shadowd/chain"
	"github.com/bitmark-inc/shadowd/command/shadow-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	connectionOffset int
	save             bool
	testnet          bool
	verbose          bool
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "shadow-cli"
	app.Usage = "manage consent and shadow items on a shadowd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to shadow `NETWORK` [shadow|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise shadow-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*shadowd host/IP and port, comma separated list of `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "broadcast, b",
					Value: "",
					Usage: " shadowd event publisher `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " use existing hex private `KEY` instead of generating one",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to the configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " use existing hex private `KEY` instead of generating one",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make the new identity the default",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "grant",
			Usage:     "grant consent, replacing any previous grant",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "*hex hash of the approved message `HASH`",
				},
				cli.Uint64Flag{
					Name:  "duration, d",
					Value: 0,
					Usage: " consent lifetime in ticks, omit for no expiry `TICKS`",
				},
			},
			Action: runGrant,
		},
		{
			Name:   "revoke",
			Usage:  "revoke consent",
			Action: runRevoke,
		},
		{
			Name:      "submit",
			Usage:     "submit a new shadow item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "cid, c",
					Value: "",
					Usage: "*content identifier `CID`",
				},
				cli.StringFlag{
					Name:  "encrypted-key, k",
					Value: "",
					Usage: "*hex encrypted content `KEY`",
				},
				cli.StringFlag{
					Name:  "source, s",
					Value: "GitHub",
					Usage: " origin of the item `SOURCE` [GitHub|Twitter]",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: " free form `TEXT`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "delete",
			Usage:     "delete a shadow item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, I",
					Value: "",
					Usage: "*item `ID`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "items",
			Usage:     "list active items",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runItems,
		},
		{
			Name:      "item",
			Usage:     "display one item, including a deleted one",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.StringFlag{
					Name:  "id, I",
					Value: "",
					Usage: "*item `ID`",
				},
			},
			Action: runItem,
		},
		{
			Name:      "consent",
			Usage:     "display the consent record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runConsent,
		},
		{
			Name:      "events",
			Usage:     "list committed events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "listen",
			Usage:     "print events as they are published",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 0,
					Usage: " stop after `COUNT` events, 0 is forever",
				},
			},
			Action: runListen,
		},
		{
			Name:   "info",
			Usage:  "display shadow-cli status",
			Action: runInfo,
		},
		{
			Name:   "shadowInfo",
			Usage:  "display shadowd status",
			Action: runShadowdInfo,
		},
		{
			Name:  "version",
			Usage: "display shadow-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: chain.IsTesting(network),
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}
		if 0 == len(config.Connections) {
			return fmt.Errorf("no connections in: %q", file)
		}

		rand.Seed(time.Now().UnixNano())

		c.App.Metadata["config"] = &metadata{
			file:             file,
			config:           config,
			connectionOffset: rand.Intn(len(config.Connections)),
			testnet:          config.TestNet,
			save:             false,
			verbose:          verbose,
			e:                e,
			w:                w,
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
