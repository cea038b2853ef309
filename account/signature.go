// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/neobex/neobexd/fault"
)

// Signature - the type for a signature
type Signature []byte

// String - hex form for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}

// PublicKey - an ed25519 public key with hex text form
type PublicKey []byte

// Account - wallet address of this key
func (publicKey PublicKey) Account() Account {
	return FromPublicKey(publicKey)
}

// MarshalText - convert key to text
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return Signature(publicKey).MarshalText()
}

// UnmarshalText - convert text into a key
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	return (*Signature)(publicKey).UnmarshalText(s)
}

// CheckSignature - verify an ed25519 signature of a message
func (publicKey PublicKey) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(publicKey) {
		return fault.ErrInvalidPublicKey
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
