// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-event-hotels/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the Authorization header is missing.
	ErrEmptyToken = errors.New("empty token")

	errInvalidTokenParams = errors.New("invalid params for generating JWT Token")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the user
// id in the "sub" claim.
//
// issuer may be empty; in that case the "iss" claim is omitted. A negative
// tokenDuration produces an already expired token, which is useful in tests.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("events", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if tokenDuration == 0 || signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	return sign(jwt.NewWithClaims(jwt.SigningMethodHS256, claims), signKey)
}

// GenerateUserIDToken creates a signed HMAC-SHA256 JWT token whose only
// payload is the numeric "userId" claim, the form issued by the registration
// system on sign-in. Such tokens never expire on their own; validity is
// governed by the session table.
func GenerateUserIDToken(userID int64, signKey string) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(time.Now())},
		UserIDClaim:      userID,
	}

	return sign(jwt.NewWithClaims(jwt.SigningMethodHS256, claims), signKey)
}

func sign(token *jwt.Token, signKey string) (models.Token, error) {
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates tokenString and resolves its owner.
//
// Validation includes:
//   - HMAC signature verification with tokenSignKey;
//   - expiration (exp) check when the claim is present;
//   - issuer (iss) check, only when tokenIssuer is non-empty;
//   - user id resolution from "sub" or "userId".
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(),
		jwt.SigningMethodHS384.Alg(),
		jwt.SigningMethodHS512.Alg(),
	})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		UserIDClaim:      claims.UserIDClaim,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	if strings.TrimSpace(authorizationHeader) == "" {
		return "", ErrEmptyToken
	}

	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
