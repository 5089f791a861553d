// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-event-hotels/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		key      string
	}{
		{"zero duration", 0, "key"},
		{"empty key", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken("iss", 1, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Subject(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != 456 {
		t.Errorf("expected userID 456, got %d", parsed.UserID)
	}
	if parsed.String() != genToken.SignedString {
		t.Error("expected parsed token to keep its compact form")
	}
}

func TestValidateAndParseJWTToken_UserIDClaim(t *testing.T) {
	genToken, err := GenerateUserIDToken(77, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != 77 {
		t.Errorf("expected userID 77, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_IssuerNotCheckedWhenEmpty(t *testing.T) {
	genToken, _ := GenerateJWTToken("any-issuer", 5, time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", ""); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", 1, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_NoUserID(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "guest"})
	signed, err := token.SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "")
	if !errors.Is(err, models.ErrNoUserIDInToken) {
		t.Errorf("expected ErrNoUserIDInToken, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", ""); err == nil {
		t.Error("expected error for unsigned token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: ErrEmptyToken},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
