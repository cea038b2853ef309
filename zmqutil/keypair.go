// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/util"
)

// curve keys are 32 bytes, stored as a tag followed by hex
const curveKeyLength = 32

type keyKind struct {
	tag     string
	private bool
	invalid error
	mode    os.FileMode
}

var (
	publicKind  = keyKind{tag: "PUBLIC:", private: false, invalid: fault.ErrInvalidPublicKeyFile, mode: 0666}
	privateKind = keyKind{tag: "PRIVATE:", private: true, invalid: fault.ErrInvalidPrivateKeyFile, mode: 0600}
)

func (k keyKind) encode(z85 string) []byte {
	return []byte(k.tag + hex.EncodeToString([]byte(zmq.Z85decode(z85))) + "\n")
}

// MakeKeyPair - create a curve key pair for the publisher
//
// neither file may exist; a failed private write removes the public file
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	// zmq returns Z85 text, see: http://rfc.zeromq.org/spec:32
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(publicKeyFileName, publicKind.encode(publicKey), publicKind.mode)
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(privateKeyFileName, privateKind.encode(privateKey), privateKind.mode)
	if nil != err {
		_ = os.Remove(publicKeyFileName)
	}
	return err
}

// ReadPublicKeyFile - the raw key from a PUBLIC: file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, publicKind)
}

// ReadPrivateKeyFile - the raw key from a PRIVATE: file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, privateKind)
}

func readKeyFile(fileName string, want keyKind) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if private != want.private {
		return nil, want.invalid
	}
	return key, nil
}

// ParseKey - decode a tagged hex key, the flag is true for a private key
//
// untagged text is reported as an invalid public key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)
	for _, k := range []keyKind{privateKind, publicKind} {
		if !strings.HasPrefix(s, k.tag) {
			continue
		}
		key, err := hex.DecodeString(s[len(k.tag):])
		if nil != err {
			return nil, false, err
		}
		if curveKeyLength != len(key) {
			return nil, false, k.invalid
		}
		return key, k.private, nil
	}
	return nil, false, fault.ErrInvalidPublicKeyFile
}
