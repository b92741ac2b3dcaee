// Package auth implements session-token issuance/verification and password
// hashing for the server.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mbelyaev/taskkeeper/internal/common"
)

// Claims are the statements carried by a session token: the registered
// claims (iat, exp) plus the account identifier the token asserts.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string
}

// TokenIssuer creates and verifies HS256-signed session tokens. The signing
// secret is injected once at construction and never changes for the life of
// the process, so a single issuer is safe for concurrent use.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

// NewTokenIssuer builds an issuer from the configured secret and validity.
// An empty secret or non-positive validity is a configuration error and must
// be treated as fatal by the caller.
func NewTokenIssuer(secret []byte, validity time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("signing secret is empty")
	}
	if validity <= 0 {
		return nil, errors.New("token validity must be positive")
	}
	return &TokenIssuer{secret: secret, validity: validity}, nil
}

// Issue signs a token asserting accountID, valid from now until
// now+validity.
func (i *TokenIssuer) Issue(accountID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the token signature first and only then its expiry, so a
// tampered token is always common.ErrInvalidToken even if its exp claim is
// in the past. A structurally valid, correctly signed token past its expiry
// returns common.ErrTokenExpired.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrInvalidToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", common.ErrInvalidToken
		}
	}

	if !token.Valid || claims.AccountID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
