// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/shadowd/fault"
)

// PrivateKey - ed25519 signing key for an account
type PrivateKey struct {
	test       bool
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random key pair
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		test:       test,
		privateKey: privateKey,
	}, nil
}

// PrivateKeyFromBytes - restore a key from its raw 64 byte form
func PrivateKeyFromBytes(test bool, buffer []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(privateKey, buffer)
	return &PrivateKey{
		test:       test,
		privateKey: privateKey,
	}, nil
}

// Account - the public part of the key
func (privateKey *PrivateKey) Account() *Account {
	account, err := New(privateKey.test, privateKey.privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		// a valid private key always has a valid public part
		panic(err)
	}
	return account
}

// IsTesting - whether the key belongs to a test chain
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.test
}

// Bytes - raw private key
func (privateKey *PrivateKey) Bytes() []byte {
	return append([]byte{}, privateKey.privateKey...)
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// String - hex form, only for key files
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.privateKey)
}
