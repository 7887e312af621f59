package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the development server.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be returned in an [AuthResponse]. UserID caches the parsed "sub"
// claim so handlers do not re-parse the subject on every request.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
