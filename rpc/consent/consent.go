// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consent

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shadowd/account"
	"github.com/bitmark-inc/shadowd/consent"
	"github.com/bitmark-inc/shadowd/digest"
	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/record"
	"github.com/bitmark-inc/shadowd/rpc/ratelimit"
	"github.com/bitmark-inc/shadowd/shadow"
)

const (
	rateLimitConsent = 100
	rateBurstConsent = 50
)

// Consent - type for the RPC
type Consent struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Handler   shadow.Handler
	IsTesting bool
}

// Info - a consent record as returned to clients
type Info struct {
	GrantedAt   uint64          `json:"grantedAt"`
	ExpiresAt   *uint64         `json:"expiresAt,omitempty"`
	MessageHash record.HexBytes `json:"messageHash"`
}

// New - create the consent RPC handler
func New(log *logger.L, handler shadow.Handler, isTesting bool) *Consent {
	return &Consent{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitConsent, rateBurstConsent),
		Handler:   handler,
		IsTesting: isTesting,
	}
}

// GrantReply - the record after a grant
type GrantReply struct {
	TxId   digest.Digest `json:"txId"`
	Record Info          `json:"record"`
}

// Grant - create or replace the owner's consent
func (c *Consent) Grant(arguments *record.GrantConsent, reply *GrantReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	txId, err := c.verify(arguments)
	if nil != err {
		return err
	}

	c.Log.Infof("Consent.Grant: owner: %s  hash: %x", arguments.Owner, []byte(arguments.MessageHash))

	r, err := c.Handler.GrantConsent(txId, arguments.Owner, arguments.MessageHash, arguments.Duration)
	if nil != err {
		return err
	}

	reply.TxId = txId
	reply.Record = toInfo(r)
	return nil
}

// RevokeReply - result of a revoke
type RevokeReply struct {
	TxId digest.Digest `json:"txId"`
}

// Revoke - remove the owner's consent
func (c *Consent) Revoke(arguments *record.RevokeConsent, reply *RevokeReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	txId, err := c.verify(arguments)
	if nil != err {
		return err
	}

	c.Log.Infof("Consent.Revoke: owner: %s", arguments.Owner)

	err = c.Handler.RevokeConsent(txId, arguments.Owner)
	if nil != err {
		return err
	}

	reply.TxId = txId
	return nil
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Owner *account.Account `json:"owner"`
}

// GetReply - the current record with its state
type GetReply struct {
	Record  Info   `json:"record"`
	Height  uint64 `json:"height"`
	Expired bool   `json:"expired"`
}

// Get - the owner's consent record
func (c *Consent) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == arguments.Owner {
		return fault.ErrMissingOwner
	}

	r, err := c.Handler.Consent(arguments.Owner)
	if nil != err {
		return err
	}

	height := c.Handler.Height()
	reply.Record = toInfo(r)
	reply.Height = height
	reply.Expired = r.IsExpired(height)
	return nil
}

func (c *Consent) verify(command record.Command) (digest.Digest, error) {
	owner := command.GetOwner()
	if nil == owner {
		return digest.Digest{}, fault.ErrMissingOwner
	}
	if owner.IsTesting() != c.IsTesting {
		return digest.Digest{}, fault.ErrWrongNetworkForPublicKey
	}

	packed, err := command.Pack()
	if nil != err {
		return digest.Digest{}, err
	}
	return packed.MakeId(), nil
}

func toInfo(r *consent.Record) Info {
	return Info{
		GrantedAt:   r.GrantedAt,
		ExpiresAt:   r.ExpiresAt,
		MessageHash: r.MessageHash.Bytes(),
	}
}
