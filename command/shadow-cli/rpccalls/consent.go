// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/record"
	"github.com/bitmark-inc/shadowd/rpc/consent"
)

// GrantData - parameters for a consent grant
type GrantData struct {
	MessageHash []byte
	Duration    *uint64 // nil: never expires
	Owner       *account.PrivateKey
}

// Grant - sign and send a grant consent command
func (client *Client) Grant(data *GrantData) (*consent.GrantReply, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	grant := &record.GrantConsent{
		MessageHash: data.MessageHash,
		Duration:    data.Duration,
		Owner:       data.Owner.Account(),
		Nonce:       nonce,
	}
	if _, err := record.Sign(data.Owner, grant); nil != err {
		return nil, err
	}

	client.printJson("Grant Request", grant)

	var reply consent.GrantReply
	if err := client.client.Call("Consent.Grant", grant, &reply); nil != err {
		return nil, err
	}

	client.printJson("Grant Reply", reply)

	return &reply, nil
}

// Revoke - sign and send a revoke consent command
func (client *Client) Revoke(owner *account.PrivateKey) (*consent.RevokeReply, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	revoke := &record.RevokeConsent{
		Owner: owner.Account(),
		Nonce: nonce,
	}
	if _, err := record.Sign(owner, revoke); nil != err {
		return nil, err
	}

	client.printJson("Revoke Request", revoke)

	var reply consent.RevokeReply
	if err := client.client.Call("Consent.Revoke", revoke, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Consent - read the consent record of an owner
func (client *Client) Consent(owner *account.Account) (*consent.GetReply, error) {

	arguments := consent.GetArguments{
		Owner: owner,
	}

	client.printJson("Consent Request", arguments)

	var reply consent.GetReply
	if err := client.client.Call("Consent.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
