package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeAlphabet omits glyphs that are easy to confuse when read aloud (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// DefaultCodeLength is the length of generated team join codes.
const DefaultCodeLength = 6

// CodeGenerator produces team join codes.
type CodeGenerator struct {
	length int
}

// NewCodeGenerator creates a new code generator producing codes of the given length.
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &CodeGenerator{length: length}
}

// Generate returns a new random join code.
// Uses cryptographically secure random selection.
func (g *CodeGenerator) Generate() (string, error) {
	code := make([]byte, g.length)
	for i := range code {
		idx, err := secureRandInt(len(codeAlphabet))
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		code[i] = codeAlphabet[idx]
	}
	return string(code), nil
}

// secureRandInt returns a cryptographically secure random integer in [0, max).
func secureRandInt(max int) (int, error) {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(nBig.Int64()), nil
}
