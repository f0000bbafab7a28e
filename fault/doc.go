// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - comparable error values for the whole daemon
//
// each error is a typed string constant so callers compare with ==
// and classify with the IsErrX predicates; the ledger errors are the
// ones returned to clients over RPC
package fault
