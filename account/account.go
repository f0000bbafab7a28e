// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/shadowd/fault"
	"github.com/bitmark-inc/shadowd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode  = 0x01
	testKeyCode    = 0x02
	algorithmShift = 4 // shift 4 bits to get algorithm

	// PublicKeySize - size of the raw public key
	PublicKeySize = ed25519.PublicKeySize
)

// Account - an ed25519 public key identifying the owner of consent
// records and shadow items
//
// the type is comparable so it can be used directly as a map key
type Account struct {
	test      bool
	publicKey [PublicKeySize]byte
}

// New - create an account from a raw public key
func New(test bool, publicKey []byte) (*Account, error) {
	if PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	account := &Account{
		test: test,
	}
	copy(account.publicKey[:], publicKey)
	return account, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert the packed form (key variant ++ public key) to an account
func FromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if ED25519 != keyAlgorithm {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return New(isTest, accountBytes[keyVariantLength:])
}

// KeyType - key algorithm code
func (account *Account) KeyType() int {
	return ED25519
}

// IsTesting - whether the key belongs to a test chain
func (account *Account) IsTesting() bool {
	return account.test
}

// PublicKeyBytes - copy of the raw public key
func (account *Account) PublicKeyBytes() []byte {
	return append([]byte{}, account.publicKey[:]...)
}

// Bytes - packed form: key variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.publicKey[:]...)
}

// String - base58 encoding of packed key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// CheckSignature - verify an ed25519 signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.publicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
