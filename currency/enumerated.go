// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/fault"
)

// Currency - currency enumeration
type Currency uint64

// possible currency values
const (
	Nothing      Currency = iota // this must be the first value
	NBX          Currency = iota
	USD          Currency = iota
	maximumValue Currency = iota // this must be the last value
	First        Currency = Nothing + 1
	Last         Currency = maximumValue - 1
)

// CodeLength - bytes of a packed currency code
const CodeLength = 3

// internal conversion
func toString(c Currency) ([]byte, error) {
	switch c {
	case NBX:
		return []byte("NBX"), nil
	case USD:
		return []byte("USD"), nil
	default:
		return []byte{}, fault.ErrCurrencyNotSupported
	}
}

// convert a string to a currency
func fromString(in string) (Currency, error) {
	switch strings.ToLower(in) {
	case "nbx", "neobex":
		return NBX, nil
	case "usd":
		return USD, nil
	default:
		return Nothing, fault.ErrCurrencyNotSupported
	}
}

// FromString - parse a currency code
func FromString(in string) (Currency, error) {
	return fromString(in)
}

// FromBytes - decode a packed 3 byte code
func FromBytes(buffer []byte) (Currency, error) {
	if CodeLength != len(buffer) {
		return Nothing, fault.ErrCurrencyNotSupported
	}
	return fromString(string(buffer))
}

// Bytes - packed 3 byte code
func (currency Currency) Bytes() []byte {
	s, err := toString(currency)
	if nil != err {
		logger.Panicf("invalid currency enumeration: %d", currency)
	}
	return s
}

// String - the currency symbol
func (currency Currency) String() string {
	s, err := toString(currency)
	if nil != err {
		return "?"
	}
	return string(s)
}

// GoString - enum value and symbol, for debugging
func (currency Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", currency, currency.String())
}

// IsValid - valid currency if in range of First to Last
func (currency Currency) IsValid() bool {
	return currency >= First && currency <= Last
}

// MarshalText - convert a currency into JSON
func (currency Currency) MarshalText() ([]byte, error) {
	return toString(currency)
}

// UnmarshalText - convert currency string to a currency enumeration value from JSON
func (currency *Currency) UnmarshalText(s []byte) error {
	c, err := fromString(string(s))
	if nil != err {
		return err
	}
	*currency = c
	return nil
}
