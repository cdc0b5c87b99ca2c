package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/testBot/internal/domain/models"
	"github.com/letsssgooo/testBot/internal/storage"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "author", input: "author", want: models.RoleAuthor},
		{name: "participant", input: "participant", want: models.RoleParticipant},
		{name: "uppercase normalized", input: "  AUTHOR ", want: models.RoleAuthor},
		{name: "unknown role", input: "teacher", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "two words", input: "author participant", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidRole)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, role)
		})
	}
}

func TestRegistry_SetRole(t *testing.T) {
	reg := NewRegistry(storage.NewMemoryStorage())
	ctx := context.Background()

	err := reg.SetRole(ctx, 1, "moderator")
	assert.ErrorIs(t, err, models.ErrInvalidRole)

	require.NoError(t, reg.SetRole(ctx, 1, models.RoleAuthor))

	role, err := reg.GetRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAuthor, role)

	// последняя запись побеждает
	require.NoError(t, reg.SetRole(ctx, 1, models.RoleParticipant))

	role, err = reg.GetRole(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleParticipant, role)
}

func TestRegistry_GetRole_Unset(t *testing.T) {
	reg := NewRegistry(storage.NewMemoryStorage())

	role, err := reg.GetRole(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUnset, role)
}
