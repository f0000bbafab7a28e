// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/shadowd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a throw-away directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// PrivateKey - a deterministic test key, different for each n
func PrivateKey(n byte) *account.PrivateKey {
	seed := bytes.Repeat([]byte{n}, ed25519.SeedSize)
	_, privateKey, err := ed25519.GenerateKey(bytes.NewReader(seed))
	if nil != err {
		panic(err)
	}
	key, err := account.PrivateKeyFromBytes(true, privateKey)
	if nil != err {
		panic(err)
	}
	return key
}

// Account - the account of PrivateKey(n)
func Account(n byte) *account.Account {
	return PrivateKey(n).Account()
}
