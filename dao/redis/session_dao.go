package redis

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"usage-map-server/db"
)

const SESSION_KEY_FORMAT_V1 = "session_v1:%s"

// SessionDAO persists login session tokens in the key-value store. Tokens
// are opaque random values; the cookie carries the token, never the site
// password.
type SessionDAO struct {
	client db.RedisClient
}

// NewSessionDAO initializes a SessionDAO with the store client.
func NewSessionDAO(client db.RedisClient) *SessionDAO {
	return &SessionDAO{client: client}
}

// Create mints a new session token with the given lifetime.
func (dao *SessionDAO) Create(ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, token)
	if err := dao.client.SetWithTTL(key, "1", ttl); err != nil {
		return "", fmt.Errorf("failed to store session in redis: %w", err)
	}
	return token, nil
}

// Validate reports whether a token belongs to a live session.
func (dao *SessionDAO) Validate(token string) bool {
	if token == "" {
		return false
	}
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, token)
	_, err := dao.client.Get(key)
	return err == nil
}

// Delete revokes a session token.
func (dao *SessionDAO) Delete(token string) error {
	key := fmt.Sprintf(SESSION_KEY_FORMAT_V1, token)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	log.Println("[SessionDAO] Revoked session token")
	return nil
}
