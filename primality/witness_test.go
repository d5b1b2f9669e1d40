// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality_test

import (
	"math/big"

	"github.com/ipfs/go-log"
	"github.com/pkg/errors"
)

func setUp(level string) {
	if err := log.SetLogLevel("primality", level); err != nil {
		panic(err)
	}
}

// queueSource replays a fixed witness sequence and fails once it runs dry, so
// a test can both force specific witnesses and prove that a run stopped after
// the expected number of draws.
type queueSource struct {
	witnesses []int64
	next      int
}

func newQueueSource(witnesses ...int64) *queueSource {
	return &queueSource{witnesses: witnesses}
}

func (q *queueSource) Draw(_ *big.Int) (*big.Int, error) {
	if q.next >= len(q.witnesses) {
		return nil, errors.New("witness queue exhausted")
	}
	a := big.NewInt(q.witnesses[q.next])
	q.next++
	return a, nil
}

// errSource simulates an entropy source that always fails.
type errSource struct{}

func (errSource) Draw(_ *big.Int) (*big.Int, error) {
	return nil, errors.New("entropy unavailable")
}
