// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// shadow-cli - command line client for shadowd
//
// identities are stored in $XDG_CONFIG_HOME/shadow-cli/NETWORK-shadow-cli.json
// with each private key encrypted by a password derived key
//
// every command that changes state is signed locally with the
// selected identity before it is sent to a shadowd
package main
