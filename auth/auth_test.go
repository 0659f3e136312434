// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateEntryCode(t *testing.T) {
	code, err := GenerateEntryCode()
	if err != nil {
		t.Fatalf("GenerateEntryCode() error = %v", err)
	}

	if len(code) != EntryCodeLength {
		t.Errorf("GenerateEntryCode() length = %d, want %d", len(code), EntryCodeLength)
	}

	// Codes are uppercase hex
	for _, c := range code {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			t.Errorf("GenerateEntryCode() contains invalid char: %c", c)
		}
	}

	// Two codes should almost never collide
	code2, _ := GenerateEntryCode()
	code3, _ := GenerateEntryCode()
	if code == code2 && code == code3 {
		t.Error("GenerateEntryCode() produced three identical codes")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "hunter2" {
		t.Error("HashPassword() returned the plaintext password")
	}

	if err := CheckPassword(hash, "hunter2"); err != nil {
		t.Errorf("CheckPassword() rejected the correct password: %v", err)
	}

	if err := CheckPassword(hash, "hunter3"); err == nil {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestSignAndParseToken(t *testing.T) {
	tests := []struct {
		name      string
		subjectID string
		role      string
	}{
		{"admin token", "admin-1", "admin"},
		{"participant token", "participant-1", "participant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := SignToken(tt.subjectID, tt.role, "secret")
			if err != nil {
				t.Fatalf("SignToken() error = %v", err)
			}

			claims, err := ParseToken(tok, "secret")
			if err != nil {
				t.Fatalf("ParseToken() error = %v", err)
			}

			if claims.Subject != tt.subjectID {
				t.Errorf("Subject = %q, want %q", claims.Subject, tt.subjectID)
			}
			if claims.Role != tt.role {
				t.Errorf("Role = %q, want %q", claims.Role, tt.role)
			}
		})
	}
}

func TestParseToken_Invalid(t *testing.T) {
	valid, _ := SignToken("user-1", "participant", "secret")

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"garbage token", "not.a.token", "secret"},
		{"empty token", "", "secret"},
		{"tampered token", valid + "x", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, tt.secret); err == nil {
				t.Error("ParseToken() accepted an invalid token")
			}
		})
	}
}
