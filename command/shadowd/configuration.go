// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shadowd/chain"
	"github.com/bitmark-inc/shadowd/configuration"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/ledger"
	"github.com/bitmark-inc/shadowd/publish"
	"github.com/bitmark-inc/shadowd/shadow"
	"github.com/bitmark-inc/shadowd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultShadowDatabase   = chain.Shadow + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "shadowd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultClockInterval = "10s"

	defaultMaxItemsPerAccount   = 100
	defaultMaxCidLength         = 100
	defaultMaxKeyLength         = 512
	defaultMaxMetadataLength    = 256
	defaultMaxMessageHashLength = 64
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LimitsType - the bounds applied to every account
type LimitsType struct {
	MaxItemsPerAccount   int `gluamapper:"max_items_per_account" json:"max_items_per_account"`
	MaxCidLength         int `gluamapper:"max_cid_length" json:"max_cid_length"`
	MaxKeyLength         int `gluamapper:"max_key_length" json:"max_key_length"`
	MaxMetadataLength    int `gluamapper:"max_metadata_length" json:"max_metadata_length"`
	MaxMessageHashLength int `gluamapper:"max_message_hash_length" json:"max_message_hash_length"`
}

// ClockType - how fast the logical clock advances
type ClockType struct {
	Interval string        `gluamapper:"interval" json:"interval"`
	Duration time.Duration `gluamapper:"-" json:"-"`
}

// RPCType - client RPC listener
//
// certificate and private_key are PEM file names
type RPCType struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Limits LimitsType `gluamapper:"limits" json:"limits"`
	Clock  ClockType  `gluamapper:"clock" json:"clock"`

	ClientRPC  RPCType               `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Shadow,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultShadowDatabase,
		},

		Limits: LimitsType{
			MaxItemsPerAccount:   defaultMaxItemsPerAccount,
			MaxCidLength:         defaultMaxCidLength,
			MaxKeyLength:         defaultMaxKeyLength,
			MaxMetadataLength:    defaultMaxMetadataLength,
			MaxMessageHashLength: defaultMaxMessageHashLength,
		},

		Clock: ClockType{
			Interval: defaultClockInterval,
		},

		ClientRPC: RPCType{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultShadowDatabase {
		switch options.Chain {
		case chain.Shadow:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	// every bound must allow at least one item or byte
	positive := []struct {
		name  string
		value int
	}{
		{"max_items_per_account", options.Limits.MaxItemsPerAccount},
		{"max_cid_length", options.Limits.MaxCidLength},
		{"max_key_length", options.Limits.MaxKeyLength},
		{"max_metadata_length", options.Limits.MaxMetadataLength},
		{"max_message_hash_length", options.Limits.MaxMessageHashLength},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return nil, fmt.Errorf("Limits: %s: %d %s", p.name, p.value, fault.ErrInvalidLimit)
		}
	}

	options.Clock.Duration, err = time.ParseDuration(options.Clock.Interval)
	if nil != err {
		return nil, fmt.Errorf("Clock: interval: %q error: %s", options.Clock.Interval, err)
	}
	if options.Clock.Duration <= 0 {
		return nil, fmt.Errorf("Clock: interval: %q must be positive", options.Clock.Interval)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// the runtime bounds from the configuration
func (c *Configuration) limits() shadow.Limits {
	return shadow.Limits{
		Limits: ledger.Limits{
			MaxItemsPerAccount: c.Limits.MaxItemsPerAccount,
			MaxCidLength:       c.Limits.MaxCidLength,
			MaxKeyLength:       c.Limits.MaxKeyLength,
			MaxMetadataLength:  c.Limits.MaxMetadataLength,
		},
		MaxMessageHashLength: c.Limits.MaxMessageHashLength,
	}
}
