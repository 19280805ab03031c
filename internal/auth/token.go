// Package auth issues and verifies session tokens and password hashes.
// Session tokens are fernet-encrypted user IDs with a TTL; they carry no
// server-side state, so logout is simply the client discarding its token.
package auth

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/arblack/trade-tracker/internal/apperrors"
)

// TokenIssuer creates and verifies fernet session tokens.
type TokenIssuer struct {
	key *fernet.Key
	ttl time.Duration
}

// NewTokenIssuer builds a TokenIssuer from a base64url-encoded key as
// produced by fernet key generation. An empty key generates a random one,
// which invalidates all sessions on restart.
func NewTokenIssuer(encodedKey string, ttl time.Duration) (*TokenIssuer, error) {
	var key *fernet.Key

	if encodedKey == "" {
		key = new(fernet.Key)
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
	} else {
		var err error
		key, err = fernet.DecodeKey(encodedKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode session key: %w", err)
		}
	}

	return &TokenIssuer{key: key, ttl: ttl}, nil
}

// Issue creates a session token for the given user ID.
func (i *TokenIssuer) Issue(userID string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(userID), i.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return string(token), nil
}

// Verify decrypts a session token and returns the user ID it was issued for.
// Expired or malformed tokens return apperrors.ErrInvalidToken.
func (i *TokenIssuer) Verify(token string) (string, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), i.ttl, []*fernet.Key{i.key})
	if payload == nil {
		return "", apperrors.ErrInvalidToken
	}
	return string(payload), nil
}
