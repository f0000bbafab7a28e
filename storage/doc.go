// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. height       = logical clock value as big endian uint64 (8 bytes)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. owner        = packed account (key variant ++ 32 byte public key)
// 6. itemId       = item digest as 32 byte SHA3-256(owner ++ sequence ++ cid)
// 7. txId         = signed command digest as 32 byte SHA3-256(packed record)
//
// Consent:
//
//   C ++ owner                 - consent record
//                                data: granted at ++ expiry flag ++ expires at ++ message hash
//
// Items:
//
//   N ++ owner                 - next sequence value, never decreases
//   K ++ owner                 - ledger length including tombstones
//   L ++ owner ++ count        - item in insertion order
//                                data: itemId ++ timestamp ++ source ++ deleted ++ cid ++ key ++ metadata
//   I ++ owner ++ itemId       - position of item in L
//                                data: count
//
// Commands:
//
//   T ++ txId                  - accepted signed commands
//                                data: height
//
// Events:
//
//   E ++ count                 - event journal in commit order
//                                data: JSON {height, event, data}
//
// Clock:
//
//   H ++ "height"              - current logical height
//   H ++ "events"              - next event journal count
//
// Testing:
//
//   Z ++ key                   - scratch pool for tests
package storage
