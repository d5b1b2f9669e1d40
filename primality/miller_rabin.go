// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/ethanp55/Primality-Testing/common"
)

// RunMillerRabin tests n with k independent witnesses, short-circuiting on the
// first witness that proves compositeness, exactly like RunFermat. The
// per-witness check is stronger: after a^(n-1) mod n == 1 it descends the
// exponent by repeated halving looking for a nontrivial square root of unity,
// which is what lets it flag Carmichael numbers that Fermat's test cannot.
func RunMillerRabin(n *big.Int, k int, src WitnessSource) (Verdict, error) {
	if err := validateTestInput(n, k); err != nil {
		return Composite, err
	}
	nMinusOne := new(big.Int).Sub(n, one)
	for i := 0; i < k; i++ {
		a, err := src.Draw(n)
		if err != nil {
			return Composite, err
		}
		if !millerRabinWitness(a, n, nMinusOne) {
			common.Logger.Debugf("miller-rabin: witness %s proves %s composite after %d trial(s)", a, n, i+1)
			return Composite, nil
		}
	}
	return ProbablePrime, nil
}

// millerRabinWitness reports whether witness a is consistent with n being
// prime. If a^(n-1) mod n != 1 the witness fails outright. Otherwise the
// exponent is halved while it stays even and the running residue z stays 1,
// so the descent stops at most one halving past the point z first deviates.
// A final residue that is neither 1 nor n-1 is a nontrivial square root of
// unity, impossible modulo a prime.
func millerRabinWitness(a, n, nMinusOne *big.Int) bool {
	if modExp(a, nMinusOne, n).Cmp(one) != 0 {
		return false
	}
	exponent := new(big.Int).Set(nMinusOne)
	z := new(big.Int).Set(one)
	for exponent.Bit(0) == 0 && z.Cmp(one) == 0 {
		exponent.Rsh(exponent, 1)
		z = modExp(a, exponent, n)
	}
	return z.Cmp(one) == 0 || z.Cmp(nMinusOne) == 0
}
