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

// RunFermat tests n with k independent witnesses of Fermat's little theorem.
// The first witness a with a^(n-1) mod n != 1 proves compositeness and
// short-circuits the run; if all k witnesses pass, the verdict is
// ProbablePrime.
//
// Known limitation: Carmichael numbers pass this test for every witness
// coprime to n, so a ProbablePrime verdict from this test alone is weaker
// than one from RunMillerRabin.
func RunFermat(n *big.Int, k int, src WitnessSource) (Verdict, error) {
	if err := validateTestInput(n, k); err != nil {
		return Composite, err
	}
	nMinusOne := new(big.Int).Sub(n, one)
	for i := 0; i < k; i++ {
		a, err := src.Draw(n)
		if err != nil {
			return Composite, err
		}
		if !fermatWitness(a, n, nMinusOne) {
			common.Logger.Debugf("fermat: witness %s proves %s composite after %d trial(s)", a, n, i+1)
			return Composite, nil
		}
	}
	return ProbablePrime, nil
}

// fermatWitness reports whether a^(n-1) mod n == 1.
func fermatWitness(a, n, nMinusOne *big.Int) bool {
	return modExp(a, nMinusOne, n).Cmp(one) == 0
}
