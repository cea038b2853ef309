// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/neobex/neobexd/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - create a random key, or a deterministic one
// when a reader is supplied (tests)
func NewPrivateKey(entropy io.Reader) (*PrivateKey, error) {
	if nil == entropy {
		entropy = rand.Reader
	}
	_, key, err := ed25519.GenerateKey(entropy)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - accepts the 64 byte private key or its 32 byte seed
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	switch len(buffer) {
	case ed25519.PrivateKeySize:
		_, key, err := ed25519.GenerateKey(bytes.NewBuffer(buffer[:ed25519.SeedSize]))
		if nil != err {
			return nil, err
		}
		if !bytes.Equal(key, buffer) {
			return nil, fault.ErrInvalidPublicKey
		}
		return &PrivateKey{key: key}, nil
	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(buffer)}, nil
	default:
		return nil, fault.ErrAccountLength
	}
}

// Bytes - the raw 64 byte private key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.key
}

// PublicKey - public half of the key
func (privateKey *PrivateKey) PublicKey() PublicKey {
	return PublicKey(privateKey.key.Public().(ed25519.PublicKey))
}

// Account - the wallet address controlled by this key
func (privateKey *PrivateKey) Account() Account {
	return FromPublicKey(privateKey.PublicKey())
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.key, message)
}
