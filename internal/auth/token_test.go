// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret-key", "HS256", 20)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return m
}

func TestNewTokenManagerRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name      string
		secret    string
		algorithm string
		ttl       int
	}{
		{"empty secret", "", "HS256", 20},
		{"non-hmac algorithm", "secret", "RS256", 20},
		{"unknown algorithm", "secret", "bogus", 20},
		{"zero ttl", "secret", "HS256", 0},
		{"negative ttl", "secret", "HS256", -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTokenManager(tc.secret, tc.algorithm, tc.ttl); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestIssueAndValidate(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, want %q", claims.Username, "alice")
	}

	// Expiry must sit roughly one TTL in the future.
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > m.TTL() {
		t.Errorf("expiry %s from now, want within (0, %s]", remaining, m.TTL())
	}
}

func TestValidateMalformedToken(t *testing.T) {
	m := newTestManager(t)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := m.Validate(token); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("Validate(%q) = %v, want ErrTokenMalformed", token, err)
		}
	}
}

func TestValidateWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewTokenManager("a-different-secret", "HS256", 20)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	token, err := other.Issue("alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.Validate(token); !errors.Is(err, ErrTokenSignature) {
		t.Errorf("Validate = %v, want ErrTokenSignature", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	m := newTestManager(t)

	// Sign a token that expired a minute ago with the manager's own key.
	token := jwt.NewWithClaims(m.method, Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := m.Validate(signed); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Validate = %v, want ErrTokenExpired", err)
	}
}

func TestValidateRejectsMissingExpiry(t *testing.T) {
	m := newTestManager(t)

	token := jwt.NewWithClaims(m.method, Claims{Username: "alice"})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := m.Validate(signed); err == nil {
		t.Error("expected a token without expiry to be rejected")
	}
}
