// Package auth mints and verifies the admin tokens that staff tools present
// when completing or rejecting redemptions.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "spakiosk"

// Claims carries the standard claims; Subject is the acting staff member.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateAdminToken signs an HS256 token for actor valid for validityDuration.
func GenerateAdminToken(actor string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if actor == "" {
		return "", fmt.Errorf("%w: empty actor", common.ErrInvalidToken)
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	return token.SignedString(secretKey)
}

// ActorFromToken validates tokenString and returns its subject. Every
// failure, including expiry, wraps common.ErrInvalidToken.
func ActorFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
