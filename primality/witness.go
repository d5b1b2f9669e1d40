// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/ethanp55/Primality-Testing/common"
)

// A WitnessSource supplies the random witnesses consumed by the probabilistic
// tests: uniform draws over the closed interval [1, n-1], fresh on every call.
// It is injected rather than global so tests can substitute deterministic
// sequences.
type WitnessSource interface {
	Draw(n *big.Int) (*big.Int, error)
}

type readerSource struct {
	rand io.Reader
}

// NewWitnessSource returns a WitnessSource backed by the given entropy reader.
func NewWitnessSource(rand io.Reader) WitnessSource {
	return &readerSource{rand: rand}
}

// CryptoWitnessSource returns a WitnessSource backed by crypto/rand.
func CryptoWitnessSource() WitnessSource {
	return &readerSource{rand: cryptorand.Reader}
}

func (s *readerSource) Draw(n *big.Int) (*big.Int, error) {
	a, err := common.GetRandomWitness(s.rand, n)
	if err != nil {
		return nil, errors.Wrap(err, "witness draw failed")
	}
	return a, nil
}
