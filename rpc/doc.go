// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - TLS JSON-RPC access to the shadow ledger
//
// services:
//   Items   - Submit, Delete, Active, Get
//   Consent - Grant, Revoke, Get
//   Events  - List
//   Node    - Info
package rpc
