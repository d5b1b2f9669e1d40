// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math"

	"github.com/pkg/errors"
)

// FermatProbability returns the textbook lower bound 1 - 2^(-k) on the
// probability that a Fermat run with k witnesses answers correctly: a
// composite number trapped by the test fails for at least half of the
// candidate witnesses in the worst informative case. This is a documented
// upper bound on the error, not a tight empirical figure.
func FermatProbability(k int) (float64, error) {
	if k < 1 {
		return 0, errors.Errorf("trial count must be >= 1, got %d", k)
	}
	return 1 - math.Pow(2, -float64(k)), nil
}

// MillerRabinProbability returns the bound 1 - 4^(-k): each Miller-Rabin
// witness independently errs with probability at most 1/4.
func MillerRabinProbability(k int) (float64, error) {
	if k < 1 {
		return 0, errors.Errorf("trial count must be >= 1, got %d", k)
	}
	return 1 - math.Pow(4, -float64(k)), nil
}
