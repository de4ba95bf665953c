package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tlias/tlias/internal/auth/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// jwtTokenCodec implements TokenCodec with HMAC-SHA256 signed JWTs.
type jwtTokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a TokenCodec signing with the given shared secret.
// The ttl is fixed at issuance; the reference policy is 122 hours.
func NewTokenCodec(secret string, ttl time.Duration) TokenCodec {
	return &jwtTokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue generates a signed token carrying the employee id and username.
func (t *jwtTokenCodec) Issue(claims domain.Claims) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       claims.ID,
		"username": claims.Username,
		"iat":      jwt.NewNumericDate(now),
		"exp":      jwt.NewNumericDate(now.Add(t.ttl)),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a token. Signature mismatch, structural
// problems, and expiry all collapse into domain.ErrInvalidToken.
func (t *jwtTokenCodec) Verify(tokenString string) (domain.Claims, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Claims{}, apperrors.Wrap(domain.ErrInvalidToken, err.Error())
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	// The numeric subject id is mandatory; JSON numbers decode as float64.
	id, ok := mapClaims["id"].(float64)
	if !ok {
		return domain.Claims{}, apperrors.Wrap(domain.ErrInvalidToken, "missing numeric id claim")
	}

	username, _ := mapClaims["username"].(string)

	return domain.Claims{ID: int64(id), Username: username}, nil
}
