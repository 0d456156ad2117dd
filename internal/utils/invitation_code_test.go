package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mizutani-dev/teamtrack-api/internal/constants"
)

func TestGenerateInvitationCode(t *testing.T) {
	code := GenerateInvitationCode()
	require.Len(t, code, constants.InvitationCodeLength)

	_, err := uuid.Parse(code)
	require.NoError(t, err)

	require.NotEqual(t, code, GenerateInvitationCode())
}

func TestValidInvitationCode(t *testing.T) {
	require.True(t, ValidInvitationCode(GenerateInvitationCode()))
	require.True(t, ValidInvitationCode("00000000-0000-0000-0000-000000000000"))

	require.False(t, ValidInvitationCode(""))
	require.False(t, ValidInvitationCode("abc123"))
	require.False(t, ValidInvitationCode("00000000-0000-0000-0000-000000000000ff"))
}
