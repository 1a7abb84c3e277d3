package otp

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestRandomCodeDigits(t *testing.T) {
	g := NewGOTPGenerator()

	for _, length := range []int{4, 6, 8} {
		code := g.RandomCode(length)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, unicode.IsDigit(r), "code %q contains non-digit", code)
		}
	}
}

func TestRandomCodeVaries(t *testing.T) {
	g := NewGOTPGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		seen[g.RandomCode(6)] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}
