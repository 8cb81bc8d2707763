// Package tokengen produces the single-use coupon codes printed by kiosks.
package tokengen

import (
	"crypto/rand"
	"strings"
)

// Length of every generated token.
const Length = 12

// Alphabet omits characters that are easy to confuse when typed from a
// screen: I, O, 0 and 1. Its size divides 256, so byte-mod sampling is
// unbiased.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generate returns a random token of Length characters from Alphabet.
// Uniqueness against stored tokens is the caller's job.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// Canonical upper-cases and trims a token typed by a customer.
func Canonical(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

// Mask keeps the first and last four characters.
func Mask(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
