// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ethanp55/Primality-Testing/common"
)

const (
	randomIntBitLen = 1024
)

func TestGetRandomInt(t *testing.T) {
	rnd := common.MustGetRandomInt(rand.Reader, randomIntBitLen)
	assert.NotZero(t, rnd, "rand int should not be zero")
	assert.True(t, rnd.BitLen() <= randomIntBitLen)
}

func TestGetRandomInt_Panics(t *testing.T) {
	assert.Panics(t, func() { common.MustGetRandomInt(rand.Reader, 0) })
	assert.Panics(t, func() { common.MustGetRandomInt(rand.Reader, 5001) })
}

func TestGetRandomPositiveInt(t *testing.T) {
	lessThan := common.MustGetRandomInt(rand.Reader, randomIntBitLen)
	rndPos := common.GetRandomPositiveInt(rand.Reader, lessThan)
	assert.NotNil(t, rndPos)
	assert.True(t, rndPos.Sign() >= 0, "rand int should not be negative")
	assert.True(t, rndPos.Cmp(lessThan) < 0, "rand int should be less than the bound")
	assert.Nil(t, common.GetRandomPositiveInt(rand.Reader, big.NewInt(0)))
	assert.Nil(t, common.GetRandomPositiveInt(rand.Reader, nil))
}

func TestGetRandomWitness(t *testing.T) {
	n := big.NewInt(97)
	for i := 0; i < 100; i++ {
		a, err := common.GetRandomWitness(rand.Reader, n)
		assert.NoError(t, err)
		assert.True(t, a.Cmp(big.NewInt(1)) >= 0, "witness should be >= 1")
		assert.True(t, a.Cmp(n) < 0, "witness should be < n")
	}
}

func TestGetRandomWitness_TooSmall(t *testing.T) {
	_, err := common.GetRandomWitness(rand.Reader, big.NewInt(1))
	assert.Error(t, err)
	_, err = common.GetRandomWitness(rand.Reader, nil)
	assert.Error(t, err)
}

func TestGetRandomOddInt(t *testing.T) {
	for _, bits := range []int{2, 8, 9, 64, 1024} {
		n, err := common.GetRandomOddInt(rand.Reader, bits)
		assert.NoError(t, err)
		assert.Equal(t, bits, n.BitLen(), "bits=%d", bits)
		assert.Equal(t, uint(1), n.Bit(0), "result should be odd, bits=%d", bits)
	}
	_, err := common.GetRandomOddInt(rand.Reader, 1)
	assert.Error(t, err)
}

func TestGetRandomPositiveRelativelyPrimeInt(t *testing.T) {
	n := common.MustGetRandomInt(rand.Reader, randomIntBitLen)
	rndPosRP := common.GetRandomPositiveRelativelyPrimeInt(rand.Reader, n)
	assert.NotZero(t, rndPosRP, "rand int should not be zero")
	assert.True(t, common.IsNumberInMultiplicativeGroup(n, rndPosRP))
	assert.True(t, rndPosRP.Cmp(big.NewInt(0)) == 1, "rand int should be positive")
}

func TestIsNumberInMultiplicativeGroup(t *testing.T) {
	assert.True(t, common.IsNumberInMultiplicativeGroup(big.NewInt(561), big.NewInt(2)))
	assert.False(t, common.IsNumberInMultiplicativeGroup(big.NewInt(561), big.NewInt(3)))
	assert.False(t, common.IsNumberInMultiplicativeGroup(big.NewInt(561), big.NewInt(561)))
	assert.False(t, common.IsNumberInMultiplicativeGroup(nil, big.NewInt(2)))
}
