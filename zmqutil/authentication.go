// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

var authentication struct {
	once sync.Once
	err  error
}

// StartAuthentication - start the ZAP handler used by CURVE servers
//
// safe to call from every publisher; only the first call has an effect
// and its result is returned to all callers
func StartAuthentication() error {
	authentication.once.Do(func() {
		zmq.AuthSetVerbose(false)
		authentication.err = zmq.AuthStart()
	})
	return authentication.err
}
