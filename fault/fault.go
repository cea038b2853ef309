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

// common errors - keep in alphabetic order
var (
	ErrAccountLength         = LengthError("account length is invalid")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrAuctionClosed         = InvalidError("auction is closed")
	ErrAuctionNotFound       = NotFoundError("auction not found")
	ErrBidNotFound           = NotFoundError("bid not found")
	ErrCannotDecodeAccount   = InvalidError("cannot decode account")
	ErrCertificateFileExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch      = ProcessError("checksum mismatch")
	ErrClearingAccount       = InvalidError("clearing account is not configured")
	ErrCryptoFailed          = ProcessError("encryption failed")
	ErrCurrencyNotSupported  = InvalidError("currency is not supported")
	ErrDatabaseVersion       = InvalidError("database version is incompatible")
	ErrDuplicateWantedId     = ExistsError("wanted id is duplicated")
	ErrExpired               = InvalidError("valid till time has passed")
	ErrFingerprintMismatch   = InvalidError("certificate fingerprint mismatch")
	ErrFundingAssetMismatch  = InvalidError("funding asset mismatch")
	ErrIdLength              = LengthError("id length is invalid")
	ErrIdentityNameExists    = ExistsError("identity name already exists")
	ErrIdentityNameNotFound  = NotFoundError("identity name not found")
	ErrInsufficientFunds     = InvalidError("insufficient funds")
	ErrInvalidAmount         = InvalidError("amount must be positive")
	ErrInvalidBitmap         = RecordError("record bitmap is invalid")
	ErrInvalidCategory       = InvalidError("id category is invalid")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidCursor         = InvalidError("cursor is invalid")
	ErrInvalidIpAddress      = InvalidError("invalid IP address")
	ErrInvalidMarker         = RecordError("visited marker is invalid")
	ErrInvalidPasswordLength = InvalidError("password must be at least 8 characters")
	ErrInvalidPortNumber     = InvalidError("invalid port number")
	ErrInvalidPrivateKeyFile = InvalidError("invalid private key file")
	ErrInvalidPublicKey      = InvalidError("public key is invalid")
	ErrInvalidPublicKeyFile  = InvalidError("invalid public key file")
	ErrInvalidRate           = InvalidError("rate must be positive")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrKeyFileExists         = ExistsError("key file already exists")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrMissingWitness        = InvalidError("caller is not witnessed")
	ErrNotAnNbxOffer         = InvalidError("not a token only offer")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNotPrivateKey         = InvalidError("identity has no private key")
	ErrNotRecordPack         = RecordError("not a record pack")
	ErrOfferIsBid            = InvalidError("offer is a bid")
	ErrOfferIsNotBid         = InvalidError("offer is not a bid")
	ErrOfferNotFound         = NotFoundError("offer not found")
	ErrPasswordMismatch      = InvalidError("passwords do not match")
	ErrRateLimiting          = InvalidError("rate limiting")
	ErrRecordExists          = ExistsError("record already exists")
	ErrRecordTruncated       = RecordError("record is truncated")
	ErrSaleNotFound          = NotFoundError("sale not found")
	ErrSaleSold              = InvalidError("sale is already sold")
	ErrTokensExhausted       = ProcessError("token supply exhausted")
	ErrTooManyWantedIds      = LengthError("too many wanted ids")
	ErrTradeInProgress       = ProcessError("trade in progress for account")
	ErrTransactionInUse      = ProcessError("transaction already in use")
	ErrUnknownOperation      = NotFoundError("unknown operation")
	ErrWantedIdNotFound      = NotFoundError("wanted id not found")
	ErrWantedIdsLength       = LengthError("wanted ids length is invalid")
	ErrWrongArgument         = InvalidError("wrong argument")
	ErrWrongArgumentCount    = InvalidError("wrong argument count")
	ErrWrongPassword         = InvalidError("wrong password")
	ErrZeroId                = InvalidError("id must not be zero")
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
