package token

import (
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", "movienight-api")

	tok, err := m.Issue(42, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want %d", userID, 42)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", "movienight-api")

	tok, err := m.Issue(1, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", "movienight-api").Issue(7, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewManager("wrong-secret", "movienight-api").Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("secret", "someone-else").Issue(7, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewManager("secret", "movienight-api").Parse(tok); err == nil {
		t.Fatalf("expected error for wrong issuer, got nil")
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewManager("k", "movienight-api").Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestIssue_RejectsInvalidUserID(t *testing.T) {
	t.Parallel()

	if _, err := NewManager("k", "movienight-api").Issue(0, time.Hour); err == nil {
		t.Fatalf("expected error for non-positive user id, got nil")
	}
}
