// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoUserIDInToken is returned by [Token.GetUserID] when neither the "sub"
// claim nor the "userId" claim carries a user identifier.
var ErrNoUserIDInToken = errors.New("token carries no user id")

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// Tokens issued by the registration system put the owner into a numeric
// "userId" claim instead of "sub"; both forms are understood.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// UserIDClaim is the optional numeric "userId" claim.
	UserIDClaim int64 `json:"userId,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier resolved from the claims.
	UserID int64 `json:"-"`
}

// GetUserID resolves the owner of the token. The "sub" claim wins when it is
// present; otherwise the numeric "userId" claim is used.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	if userIDString == "" {
		if t.UserIDClaim <= 0 {
			return 0, ErrNoUserIDInToken
		}
		return t.UserIDClaim, nil
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
