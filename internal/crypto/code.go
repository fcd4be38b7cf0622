// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// codeUpperBound is the exclusive upper bound of verification codes.
var codeUpperBound = big.NewInt(1_000_000)

type randomCodeGenerator struct {
	random io.Reader
}

// NewCodeGenerator returns a [CodeGenerator] backed by crypto/rand.
func NewCodeGenerator() CodeGenerator {
	return &randomCodeGenerator{random: rand.Reader}
}

// Generate returns a uniformly distributed code in 000000..999999.
func (g *randomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(g.random, codeUpperBound)
	if err != nil {
		return "", fmt.Errorf("error generating verification code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
