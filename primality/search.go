// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"context"
	"io"
	"math/big"

	"github.com/ethanp55/Primality-Testing/common"
)

// SearchPrime draws random odd integers of the requested bit length until one
// passes trial division and a Miller-Rabin run with k witnesses, and returns
// it. The two most significant bits of every candidate are set, so the result
// always has exactly `bits` bits. How long this takes is mostly a matter of
// luck with the draws; the context bounds the search.
func SearchPrime(ctx context.Context, rand io.Reader, bits, k int) (*big.Int, error) {
	src := NewWitnessSource(rand)
	for {
		select {
		case <-ctx.Done():
			return nil, ErrTestCancelled
		default:
		}
		candidate, err := common.GetRandomOddInt(rand, bits)
		if err != nil {
			return nil, err
		}
		if !TrialDivisionCandidate(candidate) {
			continue
		}
		verdict, err := RunMillerRabin(candidate, k, src)
		if err != nil {
			return nil, err
		}
		if verdict == ProbablePrime {
			common.Logger.Debugf("prime search: found %d-bit probable prime", candidate.BitLen())
			return candidate, nil
		}
	}
}
