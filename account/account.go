// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/neobex/neobexd/fault"
)

// miscellaneous constants
const (
	AccountLength  = 20
	checksumLength = 4
)

// Account - a wallet address
//
// the first 20 bytes of the SHA3-256 digest of the owner's public key
type Account [AccountLength]byte

// zero value is never a valid owner
var nothing Account

// FromPublicKey - derive the wallet address of a public key
func FromPublicKey(publicKey []byte) Account {
	digest := sha3.Sum256(publicKey)
	var a Account
	copy(a[:], digest[:AccountLength])
	return a
}

// FromBytes - account from exactly 20 bytes
func FromBytes(buffer []byte) (Account, error) {
	var a Account
	if AccountLength != len(buffer) {
		return a, fault.ErrAccountLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the checksummed text form
func FromBase58(s string) (Account, error) {
	var a Account
	buffer, err := base58.Decode(s)
	if nil != err || AccountLength+checksumLength != len(buffer) {
		return a, fault.ErrCannotDecodeAccount
	}

	checksum := sha3.Sum256(buffer[:AccountLength])
	if !bytes.Equal(checksum[:checksumLength], buffer[AccountLength:]) {
		return a, fault.ErrChecksumMismatch
	}
	copy(a[:], buffer[:AccountLength])
	return a, nil
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return a == nothing
}

// Bytes - raw address bytes
func (a Account) Bytes() []byte {
	return a[:]
}

// String - base58 encoding with a 4 byte checksum
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, AccountLength+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an account to its base58 JSON form
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 JSON form to an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
