// Package common contains shared constants and sentinel errors used across
// TalentHub client components.
package common

const (
	// TokenSlotKey is the persisted-state key holding the bearer token.
	// The session manager is the only writer of this slot.
	TokenSlotKey = "token"

	// UserIDSlotKey and UserRoleSlotKey mirror decoded claims for
	// convenience. The token slot remains the sole source of truth on
	// session restore.
	UserIDSlotKey   = "userId"
	UserRoleSlotKey = "userRole"
)

// MaxAttachmentSize is the upper bound, in bytes, for a locally chosen
// attachment (CV, logo, banner). Larger files are rejected before any
// request is issued.
const MaxAttachmentSize = 5 << 20
