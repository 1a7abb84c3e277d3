package otp

import (
	"crypto/sha1"

	"github.com/xlzd/gotp"
)

const (
	secretLength = 32
	interval     = 30
)

// Generator produces numeric one-time codes.
type Generator interface {
	RandomCode(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a zero-padded numeric code of the given length derived from a fresh random secret.
func (g *GOTPGenerator) RandomCode(length int) string {
	secret := gotp.RandomSecret(secretLength)

	//nolint:gosec
	hasher := &gotp.Hasher{HashName: "sha1", Digest: sha1.New}

	return gotp.NewTOTP(secret, length, interval, hasher).Now()
}
