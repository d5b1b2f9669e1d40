// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/ethanp55/Primality-Testing/common"
)

// ErrTestCancelled is returned when a concurrent test run is abandoned because
// the context was done before a verdict was reached.
var ErrTestCancelled = fmt.Errorf("primality test work cancelled")

// RunFermatConcurrent behaves like RunFermat but fans the k witness trials out
// across `concurrency` goroutines (runtime.NumCPU() when <= 0). The
// short-circuit is preserved as an early exit only: in-flight trials are
// completed and honoured before a ProbablePrime verdict is reported, so the
// result distribution matches the sequential run.
func RunFermatConcurrent(ctx context.Context, n *big.Int, k, concurrency int, src WitnessSource) (Verdict, error) {
	if err := validateTestInput(n, k); err != nil {
		return Composite, err
	}
	nMinusOne := new(big.Int).Sub(n, one)
	return runConcurrentTrials(ctx, n, k, concurrency, src, func(a *big.Int) bool {
		return fermatWitness(a, n, nMinusOne)
	})
}

// RunMillerRabinConcurrent is the Miller-Rabin analogue of
// RunFermatConcurrent.
func RunMillerRabinConcurrent(ctx context.Context, n *big.Int, k, concurrency int, src WitnessSource) (Verdict, error) {
	if err := validateTestInput(n, k); err != nil {
		return Composite, err
	}
	nMinusOne := new(big.Int).Sub(n, one)
	return runConcurrentTrials(ctx, n, k, concurrency, src, func(a *big.Int) bool {
		return millerRabinWitness(a, n, nMinusOne)
	})
}

// runConcurrentTrials executes witness trials on worker goroutines until k
// trials have passed, one trial has failed, every worker has died drawing
// witnesses, or the context is done. Workers may run a few trials beyond k
// when the countdown races; those extra trials are still honoured if they
// fail, never silently discarded.
func runConcurrentTrials(ctx context.Context, n *big.Int, k, concurrency int, src WitnessSource, witnessOK func(a *big.Int) bool) (Verdict, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	// Buffers are sized so workers can always finish a send and exit once
	// cancelled; each worker over-runs the countdown by at most one trial.
	passCh := make(chan struct{}, k+concurrency)
	failCh := make(chan struct{}, concurrency)
	errCh := make(chan error, concurrency)

	waitGroup := &sync.WaitGroup{}
	defer waitGroup.Wait()

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	remaining := int32(k)
	for i := 0; i < concurrency; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for atomic.LoadInt32(&remaining) > 0 {
				select {
				case <-workerCtx.Done():
					return
				default:
				}
				a, err := src.Draw(n)
				if err != nil {
					errCh <- errors.Wrapf(err, "trial worker failed for candidate %s", n)
					return
				}
				if !witnessOK(a) {
					common.Logger.Debugf("concurrent trial: witness %s proves %s composite", a, n)
					failCh <- struct{}{}
					return
				}
				atomic.AddInt32(&remaining, -1)
				passCh <- struct{}{}
			}
		}()
	}

	var trialErrs error
	passes, deadWorkers := 0, 0
	for {
		select {
		case <-passCh:
			if passes++; passes < k {
				continue
			}
			// All k trials passed. Let in-flight trials finish and honour
			// any failure among them before declaring the candidate prime.
			cancelWorkers()
			waitGroup.Wait()
			select {
			case <-failCh:
				return Composite, nil
			default:
			}
			return ProbablePrime, nil
		case <-failCh:
			return Composite, nil
		case err := <-errCh:
			trialErrs = multierror.Append(trialErrs, err)
			if deadWorkers++; deadWorkers == concurrency {
				return Composite, trialErrs
			}
		case <-ctx.Done():
			return Composite, ErrTestCancelled
		}
	}
}
