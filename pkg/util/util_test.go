package util

import (
	"regexp"
	"testing"
)

func TestGenerateShareToken(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerateShareToken()
		if !pattern.MatchString(token) {
			t.Fatalf("token %q is not 32 hex chars", token)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"abc", true},
		{"user_123", true},
		{"AB", false},
		{"has space", false},
		{"почта", false},
		{"", false},
		{"waytoolongusernamefortwentychars", false},
	}

	for _, tt := range tests {
		if got := IsValidUsername(tt.username); got != tt.want {
			t.Errorf("IsValidUsername(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := GeneratePasswordHash("halicarnassus")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "halicarnassus" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPasswordHash(hash, "halicarnassus") {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash(hash, "wrong") {
		t.Error("wrong password should not verify")
	}
}

func TestGetRandomString(t *testing.T) {
	s := GetRandomString(32)
	if len(s) != 32 {
		t.Errorf("length = %d, want 32", len(s))
	}
	if s == GetRandomString(32) {
		t.Error("two random strings should differ")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"30m", false},
		{"1h", false},
		{"7d", false},
		{"junk", true},
	}

	for _, tt := range tests {
		if _, err := ParseDuration(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
