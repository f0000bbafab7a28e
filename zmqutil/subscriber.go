// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/util"
)

const (
	identifierSize = 32
)

// NewSubscriber - create a SUB socket connected to a CURVE secured publisher
//
// a fresh client keypair is generated for each subscriber; a zero
// timeout leaves receive blocking
func NewSubscriber(address string, serverPublicKey []byte, timeout time.Duration) (*zmq.Socket, error) {

	if len(serverPublicKey) != publicLength {
		return nil, fault.ErrInvalidPublicKeyFile
	}

	connectTo, err := util.CanonicalIPandPort("tcp://", address)
	if nil != err {
		return nil, err
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	// create a secure random identifier
	randomIdBytes := make([]byte, identifierSize)
	_, err = rand.Read(randomIdBytes)
	if nil != err {
		goto failure
	}

	// set up as client
	err = socket.SetCurveServer(0)
	if nil != err {
		goto failure
	}
	err = socket.SetCurvePublickey(zmq.Z85decode(publicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveSecretkey(zmq.Z85decode(privateKey))
	if nil != err {
		goto failure
	}

	// local identitity is a random value
	err = socket.SetIdentity(string(randomIdBytes))
	if nil != err {
		goto failure
	}

	// destination identity is its public key
	err = socket.SetCurveServerkey(string(serverPublicKey))
	if nil != err {
		goto failure
	}

	// zero => do not set timeout
	if 0 != timeout {
		err = socket.SetRcvtimeo(timeout)
		if nil != err {
			goto failure
		}
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}

	// subscription prefix - empty => receive everything
	err = socket.SetSubscribe("")
	if nil != err {
		goto failure
	}

	// set IPv6 state before connect
	err = socket.SetIpv6(strings.HasPrefix(connectTo, "tcp://["))
	if nil != err {
		goto failure
	}

	err = socket.Connect(connectTo)
	if nil != err {
		goto failure
	}
	return socket, nil

failure:
	socket.Close()
	return nil, err
}
