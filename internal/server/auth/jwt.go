package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpetrenko/userhub/internal/common"
)

// Claims carries the registered claim set plus the subject user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenService mints and verifies stateless HS256 bearer tokens. Verification
// uses the caller-supplied clock with zero skew tolerance: a token whose
// expiry equals the verification instant is already expired.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token for the given subject with issuedAt = now and
// expiresAt = now + TTL.
func (s *TokenService) Issue(subject string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: subject,
	})

	return token.SignedString(s.secret)
}

// Verify validates signature and structure against the service secret and
// the expiry against now. It returns the embedded subject on success,
// common.ErrTokenExpired past the expiry, and common.ErrInvalidToken for
// every other failure (bad signature, wrong algorithm, malformed input).
func (s *TokenService) Verify(tokenString string, now time.Time) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
