// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - test setup shared by the rpc packages
package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/shadowd/fixtures"
)

const LogCategory = fixtures.LogCategory

var (
	once        sync.Once
	certificate string
	key         string
)

// SetupTestLogger - log to a throw-away directory
func SetupTestLogger() {
	fixtures.SetupTestLogger()
}

// TeardownTestLogger - stop logging and clean up
func TeardownTestLogger() {
	fixtures.TeardownTestLogger()
}

// Certificate - PEM of a self signed certificate for localhost
func Certificate() string {
	generate()
	return certificate
}

// Key - PEM of the private key matching Certificate
func Key() string {
	generate()
	return key
}

func generate() {
	once.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		c, k, err := certgen.NewTLSCertPair("shadowd test certificate", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		certificate = string(c)
		key = string(k)
	})
}
