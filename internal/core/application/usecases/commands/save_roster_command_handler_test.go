package commands_test

import (
	"errors"
	"testing"

	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSaveRosterCommand(t *testing.T) {
	t.Run("should trim the name", func(t *testing.T) {
		cmd, err := commands.NewSaveRosterCommand("  family 2024 ", entries(3))

		require.NoError(t, err)
		assert.Equal(t, "family 2024", cmd.Name())
		assert.Len(t, cmd.Groups(), 1)
	})

	t.Run("should require a name with at least one key character", func(t *testing.T) {
		_, err := commands.NewSaveRosterCommand("   ", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSaveRosterCommandHandler_Handle(t *testing.T) {
	t.Run("should save an incomplete draft under its key", func(t *testing.T) {
		cmd, _ := commands.NewSaveRosterCommand("Family 2024!", entries(2))

		repo := new(MockRosterRepository)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(r *roster.Roster) bool {
			return r.Name() == "Family 2024!" && len(r.Groups()) == 1
		})).Return(nil).Once()

		key, err := commands.NewSaveRosterCommandHandler(repo).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "Family_2024_", key)
		repo.AssertExpectations(t)
	})

	t.Run("should reject unnamed groups", func(t *testing.T) {
		groups := entries(3)
		groups[0].Name = ""
		cmd, _ := commands.NewSaveRosterCommand("family", groups)
		repo := new(MockRosterRepository)

		_, err := commands.NewSaveRosterCommandHandler(repo).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, roster.ErrInvalidInput)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should return repository errors", func(t *testing.T) {
		cmd, _ := commands.NewSaveRosterCommand("family", entries(3))
		repo := new(MockRosterRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := commands.NewSaveRosterCommandHandler(repo).Handle(t.Context(), cmd)

		require.EqualError(t, err, "disk full")
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		_, err := commands.NewSaveRosterCommandHandler(new(MockRosterRepository)).Handle(t.Context(), commands.SaveRosterCommand{})

		require.ErrorIs(t, err, commands.ErrSaveRosterCommandIsNotConstructed)
	})
}
