// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/ethanp55/Primality-Testing/common"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModExp computes (x^y) mod n by repeated squaring, halving the exponent at
// each level of recursion. Intermediate values are reduced before every
// multiply, so operand sizes stay proportional to the bit length of n rather
// than growing with y. The result is always in [0, n-1]; with n == 1 every
// result degenerates to 0, and y == 0 yields 1 mod n for any x (0^0 == 1 by
// convention here).
//
// A negative exponent, a modulus below 1 or a nil argument is a contract
// violation and is rejected before any arithmetic happens.
func ModExp(x, y, n *big.Int) (*big.Int, error) {
	if x == nil || y == nil || n == nil {
		return nil, errors.New("ModExp: arguments must not be nil")
	}
	if y.Sign() < 0 {
		return nil, errors.Errorf("ModExp: exponent must be >= 0, got %s", y)
	}
	if n.Cmp(one) < 0 {
		return nil, errors.Errorf("ModExp: modulus must be >= 1, got %s", n)
	}
	return modExp(x, y, n), nil
}

// modExp is the validation-free core. Recursion depth equals the bit length
// of y; each level performs one squaring and at most one extra multiply.
func modExp(x, y, n *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int).Mod(one, n)
	}
	z := modExp(x, new(big.Int).Rsh(y, 1), n)
	modN := common.ModInt(n)
	zSq := modN.Square(z)
	if y.Bit(0) == 0 {
		return zSq
	}
	return modN.Mul(x, zSq)
}
