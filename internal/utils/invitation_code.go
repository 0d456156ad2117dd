package utils

import (
	"github.com/google/uuid"

	"github.com/mizutani-dev/teamtrack-api/internal/constants"
)

// GenerateInvitationCode returns a fresh invitation code in canonical UUID
// text form (36 characters).
func GenerateInvitationCode() string {
	return uuid.NewString()
}

// ValidInvitationCode reports whether a submitted code has the canonical
// length. Malformed codes are rejected before any storage lookup.
func ValidInvitationCode(code string) bool {
	return len(code) == constants.InvitationCodeLength
}
