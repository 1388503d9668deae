package commands_test

import (
	"testing"

	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftPickOrderCommand(t *testing.T) {
	t.Run("should create a command", func(t *testing.T) {
		groups := entries(4, 4, 4)

		cmd, err := commands.NewDraftPickOrderCommand(groups)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, groups, cmd.Groups())
	})

	t.Run("should not share entries with the caller", func(t *testing.T) {
		groups := entries(4, 4, 4)
		cmd, _ := commands.NewDraftPickOrderCommand(groups)

		groups[0].Members[0].Name = "changed"

		assert.Equal(t, "A1", cmd.Groups()[0].Members[0].Name)
	})

	t.Run("should require groups", func(t *testing.T) {
		_, err := commands.NewDraftPickOrderCommand(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		var cmd commands.DraftPickOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrDraftPickOrderCommandIsNotConstructed)
	})
}
