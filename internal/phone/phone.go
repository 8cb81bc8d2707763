// Package phone maps customer phone input to the canonical identifier that
// keys wallets, redemptions and rate-limit counters.
//
// The canonical form is digits only, with the Turkish country code and no
// leading plus, e.g. "905551234567".
package phone

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

const (
	countryCode = "90"
	trunkPrefix = "0"

	// national subscriber numbers are ten digits long
	nationalLen = 10
)

// Normalize returns the canonical form of raw. It is pure and idempotent:
// Normalize(Normalize(x)) == Normalize(x). Input is assumed to be validated
// by the caller; anything unrecognised is returned as its bare digits.
func Normalize(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)

	// international call prefix
	for strings.HasPrefix(digits, "00") {
		digits = digits[2:]
	}

	switch {
	case len(digits) == nationalLen+1 && strings.HasPrefix(digits, trunkPrefix):
		return countryCode + digits[1:]
	case len(digits) == nationalLen && !strings.HasPrefix(digits, trunkPrefix):
		return countryCode + digits
	default:
		return digits
	}
}

// Mask hides everything but the last four digits.
func Mask(p string) string {
	if len(p) <= 4 {
		return p
	}
	return strings.Repeat("*", len(p)-4) + p[len(p)-4:]
}

// Hash returns the hex HMAC-SHA256 of a canonical phone under key. It lets
// audit records be looked up by phone without storing the number.
func Hash(key []byte, p string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(p))
	return hex.EncodeToString(mac.Sum(nil))
}
