// Package session owns the client's authentication state: restoring it from
// the persisted token, exchanging credentials for a new token, and tearing
// it down on logout or when the server rejects a request.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/models"
)

// Claims are the token claims this client depends on. The token is decoded
// for display purposes only; no signature verification happens client-side,
// the server remains the verifying party for every mutating call.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	FirstName   string `json:"firstName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// User is the decoded identity attached to an authenticated session.
type User struct {
	UserID      string
	Role        string
	DisplayName string
}

// User maps the claims to the identity shown in the UI. Talents display
// their first name, recruiters their company name.
func (c *Claims) User() *User {
	name := c.CompanyName
	if c.Role == models.RoleTalent {
		name = c.FirstName
	}
	return &User{UserID: c.UserID, Role: c.Role, DisplayName: name}
}

// DecodeToken parses the raw token without verifying its signature and
// checks expiry against now. It returns common.ErrInvalidToken for anything
// undecodable and common.ErrTokenExpired for a decodable token whose exp is
// absent or in the past. Both cases mean the persisted token must be purged.
func DecodeToken(raw string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(now) {
		return nil, common.ErrTokenExpired
	}
	return claims, nil
}
