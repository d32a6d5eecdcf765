package identity

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type tokenMeta struct {
	accountID string
	expiresAt time.Time
}

// credentialTokens issues and validates opaque federated credential tokens.
type credentialTokens struct {
	mu     sync.Mutex
	ttl    time.Duration
	tokens map[string]tokenMeta
}

func newCredentialTokens(ttl time.Duration) *credentialTokens {
	return &credentialTokens{
		ttl:    ttl,
		tokens: make(map[string]tokenMeta),
	}
}

func (c *credentialTokens) issue(accountID string) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[token] = tokenMeta{
		accountID: accountID,
		expiresAt: time.Now().Add(c.ttl),
	}
	return token, nil
}

func (c *credentialTokens) validate(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	meta, ok := c.tokens[token]
	if !ok {
		return "", false
	}
	if time.Now().After(meta.expiresAt) {
		delete(c.tokens, token)
		return "", false
	}
	return meta.accountID, true
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
