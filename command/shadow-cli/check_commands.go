// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/chain"
	"github.com/bitmark-inc/shadowd/command/shadow-cli/configuration"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
)

// errors local to the client
var (
	ErrRequiredBroadcast    = fault.InvalidError("broadcast address is required")
	ErrRequiredCid          = fault.InvalidError("cid is required")
	ErrRequiredConnect      = fault.InvalidError("connect is required")
	ErrRequiredDescription  = fault.InvalidError("description is required")
	ErrRequiredEncryptedKey = fault.InvalidError("encrypted key is required")
	ErrRequiredIdentity     = fault.InvalidError("identity is required")
	ErrRequiredItemId       = fault.InvalidError("item id is required")
	ErrRequiredMessageHash  = fault.InvalidError("message hash is required")
)

// network names and their aliases
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "shadow", "live":
		return chain.Shadow, nil
	case "testing", "test":
		return chain.Testing, nil
	case "local", "regression":
		return chain.Local, nil
	default:
		return "", fault.ErrInvalidChain
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

func checkConnect(connect string) ([]string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return nil, ErrRequiredConnect
	}

	connections := []string{}
	for _, c := range strings.Split(connect, ",") {
		c = strings.TrimSpace(c)
		if "" != c {
			connections = append(connections, c)
		}
	}
	if 0 == len(connections) {
		return nil, ErrRequiredConnect
	}
	return connections, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// a supplied hex key, or a new random one
func checkKey(key string, testnet bool) (*account.PrivateKey, error) {
	if "" == key {
		return account.NewPrivateKey(testnet)
	}
	buffer, err := hex.DecodeString(key)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromBytes(testnet, buffer)
}

func checkMessageHash(hash string) ([]byte, error) {
	if "" == hash {
		return nil, ErrRequiredMessageHash
	}
	return hex.DecodeString(hash)
}

func checkCid(cid string) (string, error) {
	if "" == cid {
		return "", ErrRequiredCid
	}
	return cid, nil
}

func checkEncryptedKey(key string) ([]byte, error) {
	if "" == key {
		return nil, ErrRequiredEncryptedKey
	}
	return hex.DecodeString(key)
}

func checkItemId(id string) (digest.Digest, error) {
	var d digest.Digest
	if "" == id {
		return d, ErrRequiredItemId
	}
	err := d.UnmarshalText([]byte(id))
	return d, err
}

// owner may be an identity name or a base58 account, blank is the
// global identity
func checkOwner(owner string, name string, config *configuration.Configuration) (*account.Account, error) {
	if "" == owner {
		owner = name
	}
	if "" == owner {
		owner = config.DefaultIdentity
	}
	if _, ok := config.Identities[owner]; ok {
		return config.Account(owner)
	}
	acc, err := account.FromBase58(owner)
	if nil != err {
		return nil, fault.ErrIdentityNotFound
	}
	if acc.IsTesting() != config.TestNet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return acc, nil
}

// returns:
//   true  if file exists and is a directory
//   false if file exists and is not a directory
//   error if file does not exist
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
