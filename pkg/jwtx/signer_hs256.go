package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the smallest acceptable HMAC secret. Anything shorter
// than the hash output weakens the scheme below its design strength.
const MinSecretBytes = 32

type hs256Signer struct {
	secret []byte
}

func newHS256Signer(secret []byte) (*hs256Signer, error) {
	s := &hs256Signer{secret: secret}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Validate() error {
	if len(s.secret) < MinSecretBytes {
		return errors.New("jwtx: HS256 secret must be at least 32 bytes")
	}
	return nil
}

func (s *hs256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}
