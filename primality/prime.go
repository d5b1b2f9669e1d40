// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// default Miller-Rabin round count used by IsProbablyPrime
	primeTestN = 30
)

// Verdict is the one-sided outcome of a probabilistic primality test.
// ProbablePrime means "not proven composite by this run", never a certainty;
// Composite is a proof.
type Verdict int

const (
	Composite Verdict = iota
	ProbablePrime
)

func (v Verdict) String() string {
	if v == ProbablePrime {
		return "prime"
	}
	return "composite"
}

// PrimeTest runs the Fermat and Miller-Rabin tests independently on the same
// candidate and trial count and returns both verdicts. Each test draws its own
// witnesses from src; nothing is shared between the two runs.
func PrimeTest(n *big.Int, k int, src WitnessSource) (fermat, millerRabin Verdict, err error) {
	if fermat, err = RunFermat(n, k, src); err != nil {
		return Composite, Composite, err
	}
	if millerRabin, err = RunMillerRabin(n, k, src); err != nil {
		return Composite, Composite, err
	}
	return fermat, millerRabin, nil
}

// IsProbablyPrime reports whether n passes a Miller-Rabin run with the default
// round count, drawing witnesses from crypto/rand. It returns false for any
// n < 2.
func IsProbablyPrime(n *big.Int) bool {
	if n == nil || n.Cmp(two) < 0 {
		return false
	}
	verdict, err := RunMillerRabin(n, primeTestN, CryptoWitnessSource())
	return err == nil && verdict == ProbablePrime
}

func validateTestInput(n *big.Int, k int) error {
	if n == nil {
		return errors.New("candidate must not be nil")
	}
	if n.Cmp(two) < 0 {
		return errors.Errorf("candidate must be >= 2, got %s", n)
	}
	if k < 1 {
		return errors.Errorf("trial count must be >= 1, got %d", k)
	}
	return nil
}
