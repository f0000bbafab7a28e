// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks a node can serve
//
// accounts on every chain except the live one use testing keys
package chain

// names of all chains
const (
	Shadow  = "shadow"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Shadow, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true if accounts on the chain use testing keys
func IsTesting(name string) bool {
	return Shadow != name
}
