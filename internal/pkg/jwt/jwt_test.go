package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken("u-1", "admin", "Admin", testSecret, 24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != "admin" || claims.Name != "Admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "u-1" || claims.Issuer != Issuer {
		t.Fatalf("unexpected registered claims: %+v", claims.RegisteredClaims)
	}
	if ttl := time.Until(claims.ExpiresAt.Time); ttl < 23*time.Hour || ttl > 24*time.Hour {
		t.Fatalf("unexpected ttl %s", ttl)
	}
}

func TestValidateRejects(t *testing.T) {
	good, err := GenerateToken("u-1", "employee", "Sam", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expired, err := GenerateToken("u-1", "employee", "Sam", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrTokenInvalid},
		{"garbage", "not-a-token", ErrTokenInvalid},
		{"wrong secret", good, ErrTokenInvalid},
		{"tampered", good[:strings.LastIndex(good, ".")] + ".AAAA", ErrTokenInvalid},
		{"expired", expired, ErrTokenExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			secret := testSecret
			if tc.name == "wrong secret" {
				secret = "other"
			}
			_, err := ValidateToken(tc.token, secret)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
