//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/domain/seat"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/errs"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit id", func(t *testing.T) {
		repo := &stubSeatRepo{seats: map[string]*seat.Seat{}}
		cmds := commands.NewSeatCommands(repo)

		view, err := cmds.CreateSeat(ctx, commands.CreateSeatParams{
			ID:    "S1",
			Label: "Window desk",
			X:     12.5,
			Y:     40,
		})
		require.NoError(t, err)
		assert.Equal(t, "S1", view.ID)
		assert.Equal(t, "Window desk", view.Label)
		assert.Contains(t, repo.seats, "S1")
	})

	t.Run("generated id", func(t *testing.T) {
		repo := &stubSeatRepo{seats: map[string]*seat.Seat{}}
		cmds := commands.NewSeatCommands(repo)

		view, err := cmds.CreateSeat(ctx, commands.CreateSeatParams{Label: "Corner desk"})
		require.NoError(t, err)
		_, err = uuid.Parse(view.ID)
		assert.NoError(t, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := &stubSeatRepo{seats: map[string]*seat.Seat{}}
		cmds := commands.NewSeatCommands(repo)

		_, err := cmds.CreateSeat(ctx, commands.CreateSeatParams{ID: "S1", Label: "A"})
		require.NoError(t, err)
		_, err = cmds.CreateSeat(ctx, commands.CreateSeatParams{ID: "S1", Label: "B"})
		assert.ErrorIs(t, err, commands.ErrSeatAlreadyExists)
	})

	t.Run("empty label", func(t *testing.T) {
		repo := &stubSeatRepo{seats: map[string]*seat.Seat{}}
		cmds := commands.NewSeatCommands(repo)

		_, err := cmds.CreateSeat(ctx, commands.CreateSeatParams{ID: "S1", Label: "  "})
		assert.True(t, errs.Is(err, commands.ErrInvalidSeat))
	})
}

func TestDeleteSeat(t *testing.T) {
	ctx := context.Background()

	repo := &stubSeatRepo{seats: map[string]*seat.Seat{}}
	cmds := commands.NewSeatCommands(repo)

	_, err := cmds.CreateSeat(ctx, commands.CreateSeatParams{ID: "S1", Label: "A"})
	require.NoError(t, err)

	require.NoError(t, cmds.DeleteSeat(ctx, "S1"))
	assert.NotContains(t, repo.seats, "S1")

	assert.ErrorIs(t, cmds.DeleteSeat(ctx, "S1"), commands.ErrSeatNotFound)
}
