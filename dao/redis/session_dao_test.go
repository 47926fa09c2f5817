package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"usage-map-server/db"
)

func TestSessionDAO_CreateAndValidate(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewSessionDAO(mockClient)

	// Act
	token, err := dao.Create(time.Hour)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(token) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(token))
	}
	if !dao.Validate(token) {
		t.Error("Expected freshly created token to validate")
	}

	// Verify key shape in the store
	keys, _ := mockClient.Keys("session_v1:*")
	if len(keys) != 1 || !strings.HasSuffix(keys[0], token) {
		t.Errorf("Expected one session key for token, got %v", keys)
	}
}

func TestSessionDAO_ValidateUnknownToken(t *testing.T) {
	dao := NewSessionDAO(db.NewMockRedisClient(context.Background()))

	if dao.Validate("deadbeef") {
		t.Error("Expected unknown token to be rejected")
	}
	if dao.Validate("") {
		t.Error("Expected empty token to be rejected")
	}
}

func TestSessionDAO_Expiry(t *testing.T) {
	dao := NewSessionDAO(db.NewMockRedisClient(context.Background()))

	token, err := dao.Create(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if dao.Validate(token) {
		t.Error("Expected expired session to be rejected")
	}
}

func TestSessionDAO_Delete(t *testing.T) {
	dao := NewSessionDAO(db.NewMockRedisClient(context.Background()))

	token, _ := dao.Create(time.Hour)
	if err := dao.Delete(token); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dao.Validate(token) {
		t.Error("Expected deleted session to be rejected")
	}
}
