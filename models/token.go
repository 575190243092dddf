package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for the
// authentication flow.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry,
// issuer). Email and Role are custom claims carried alongside the standard
// set so that authorization checks never require a database round trip.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64, populated during token validation.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Email is the account email carried as a custom claim.
	Email string `json:"email,omitempty"`

	// Role is the account role ("admin" or "user") carried as a custom
	// claim.
	Role string `json:"role,omitempty"`

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID int64 `json:"-"`
}

// Principal returns the authenticated identity embedded in the token. It is
// the value attached to the request context by the authentication middleware
// and consumed by downstream authorization checks.
func (t *Token) Principal() Principal {
	return Principal{
		UserID: t.UserID,
		Email:  t.Email,
		Role:   t.Role,
	}
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
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

// Principal is the authenticated identity attached to a request after token
// validation: who is acting, under which email, with which role.
type Principal struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the principal carries the administrator role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
