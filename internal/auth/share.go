package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// ShareTokens generates opaque article share tokens.
type ShareTokens struct {
	size int
}

// NewShareTokens returns a generator producing tokens from size random bytes.
func NewShareTokens(size int) *ShareTokens {
	return &ShareTokens{size: size}
}

// NewShareToken returns a fresh URL-safe random token.
func (g *ShareTokens) NewShareToken() (string, error) {
	b := make([]byte, g.size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
