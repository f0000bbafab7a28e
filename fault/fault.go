// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// shadow ledger errors - keep in alphabetic order
var (
	ErrCidTooLong         = LengthError("cid too long")
	ErrConsentExpired     = ProcessError("consent expired")
	ErrConsentNotFound    = NotFoundError("consent not found")
	ErrInvalidSource      = InvalidError("invalid source")
	ErrItemNotFound       = NotFoundError("item not found")
	ErrKeyTooLong         = LengthError("encrypted key too long")
	ErrMessageHashTooLong = LengthError("message hash too long")
	ErrMetadataTooLong    = LengthError("metadata too long")
	ErrNoConsent          = NotFoundError("no consent")
	ErrTooManyItems       = RecordError("too many items")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCannotDecodeAccount          = ProcessError("cannot decode account")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrConnectionLimitReached       = ProcessError("connection limit reached")
	ErrCryptoFailed                 = ProcessError("crypto failed")
	ErrDatabaseVersionNotSupported  = RecordError("database version not supported")
	ErrIdentityAlreadyExists        = ExistsError("identity already exists")
	ErrIdentityNotFound             = NotFoundError("identity not found")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDigest                = InvalidError("invalid digest")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidLimit                 = InvalidError("invalid limit")
	ErrInvalidPassword              = InvalidError("invalid password")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingOwner                 = InvalidError("missing owner")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotPrivateKey                = InvalidError("not private key")
	ErrNotPublicKey                 = InvalidError("not public key")
	ErrNotShadowCommand             = InvalidError("not a shadow command")
	ErrPasswordMismatch             = InvalidError("password mismatch")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrRecordHasExtraData           = RecordError("record has extra data")
	ErrTransactionAlreadyExists     = ExistsError("transaction already exists")
	ErrUnexpectedEndOfRecord        = RecordError("unexpected end of record")
	ErrUnmarshalTextFailed          = ProcessError("unmarshal text failed")
	ErrWrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
