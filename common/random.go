// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 5000
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// MustGetRandomInt panics if it is unable to gather entropy from `io.Reader` or when `bits` is <= 0
func MustGetRandomInt(rand io.Reader, bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		panic(errors.Wrap(err, "rand read failure in MustGetRandomInt!"))
	}
	n := new(big.Int).SetBytes(buf)
	// trim the excess bits gathered from whole bytes
	excess := len(buf)*8 - bits
	return n.Rsh(n, uint(excess))
}

func GetRandomPositiveInt(rand io.Reader, lessThan *big.Int) *big.Int {
	if lessThan == nil || zero.Cmp(lessThan) != -1 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(rand, lessThan.BitLen())
		if try.Cmp(lessThan) < 0 {
			break
		}
	}
	return try
}

// GetRandomWitness draws a uniform integer in the closed interval [1, n-1].
// Unlike MustGetRandomInt it returns an error rather than panicking, since a
// too-small n is a caller input rather than an entropy failure.
func GetRandomWitness(rand io.Reader, n *big.Int) (*big.Int, error) {
	if n == nil || n.Cmp(two) < 0 {
		return nil, errors.Errorf("GetRandomWitness: n must be >= 2")
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(rand, n.BitLen())
		if try.Cmp(one) >= 0 && try.Cmp(n) < 0 {
			return try, nil
		}
	}
}

// GetRandomOddInt returns a random odd integer of exactly `bits` bits.
// The two most significant bits are always set so that products of two results
// never come up one bit short.
func GetRandomOddInt(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 || mustGetRandomIntMaxBits < bits {
		return nil, errors.Errorf("GetRandomOddInt: bits should be in [2, %d]", mustGetRandomIntMaxBits)
	}
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rand, bytes); err != nil {
		return nil, errors.Wrap(err, "rand read failure in GetRandomOddInt")
	}
	// Clear bits in the first byte to make sure the candidate has a size <= bits.
	bytes[0] &= uint8(int(1<<b) - 1)
	// Don't let the value be too small, i.e, set the most significant two bits.
	if b >= 2 {
		bytes[0] |= 3 << (b - 2)
	} else {
		// Here b==1, because b cannot be zero.
		bytes[0] |= 1
		if len(bytes) > 1 {
			bytes[1] |= 0x80
		}
	}
	// Make the value odd since an even candidate certainly isn't prime.
	bytes[len(bytes)-1] |= 1
	return new(big.Int).SetBytes(bytes), nil
}

// Generate a random element in the group of all the elements in Z/nZ that
// has a multiplicative inverse.
func GetRandomPositiveRelativelyPrimeInt(rand io.Reader, n *big.Int) *big.Int {
	if n == nil || zero.Cmp(n) != -1 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(rand, n.BitLen())
		if IsNumberInMultiplicativeGroup(n, try) {
			break
		}
	}
	return try
}

func IsNumberInMultiplicativeGroup(n, v *big.Int) bool {
	if n == nil || v == nil || zero.Cmp(n) != -1 {
		return false
	}
	gcd := big.NewInt(0)
	return v.Cmp(n) < 0 && v.Cmp(one) >= 0 &&
		gcd.GCD(nil, nil, v, n).Cmp(one) == 0
}
