//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/config"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/jwt"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/password"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := password.Hash("s3cret")
	require.NoError(t, err)

	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAuthCommands(config.AdminConfig{PasswordHash: hash}, jwtService)

	t.Run("correct password yields an admin token", func(t *testing.T) {
		result, err := cmds.Login(ctx, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, result.Role)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := cmds.Login(ctx, "nope")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := cmds.Login(ctx, "")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
