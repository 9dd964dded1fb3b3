package auth

import (
	"testing"
	"time"
)

func TestSessionSetGetDelete(t *testing.T) {
	rdb := setupTestRedis(t)

	username := "session_test_user"
	token := "session_test_token"
	duration := 2 * time.Second

	// Set session
	if err := SetSession(rdb, username, token, duration); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}

	// Get session
	gotToken, err := GetSession(rdb, username)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if gotToken != token {
		t.Errorf("expected token %q, got %q", token, gotToken)
	}

	// Delete session
	if err := DeleteSession(rdb, username); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	// Get session after deletion
	_, err = GetSession(rdb, username)
	if err == nil {
		t.Errorf("expected error for deleted session, got nil")
	}
}
