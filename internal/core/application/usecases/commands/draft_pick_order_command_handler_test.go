package commands_test

import (
	"testing"

	"giftexchange/internal/core/application/usecases/commands"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/domain/services"
	"giftexchange/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftPickOrderCommandHandler_Handle(t *testing.T) {
	drafter := services.NewPickOrderDrafter(services.WithSeedSource(services.FixedSeedSource(7)))

	t.Run("should draft ranks 1..N ignoring supplied ranks", func(t *testing.T) {
		groups := entries(4, 4, 4)
		stale := 99
		groups[0].Members[0].Rank = &stale
		cmd, _ := commands.NewDraftPickOrderCommand(groups)

		metrics := new(MockDrawMetrics)
		metrics.On("ObserveDraw", ports.EnginePickOrder, ports.OutcomeSuccess).Once()
		h := commands.NewDraftPickOrderCommandHandler(drafter, metrics)

		result, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 12, result.TotalMembers)
		seen := map[int]bool{}
		for _, g := range result.Groups {
			for _, m := range g.Members {
				require.NotNil(t, m.Rank, m.Name)
				seen[*m.Rank] = true
			}
		}
		assert.Len(t, seen, 12)
		for r := 1; r <= 12; r++ {
			assert.True(t, seen[r], "rank %d", r)
		}
		metrics.AssertExpectations(t)
	})

	t.Run("should reject input below the draw preconditions", func(t *testing.T) {
		cmd, _ := commands.NewDraftPickOrderCommand(entries(4, 4))

		metrics := new(MockDrawMetrics)
		metrics.On("ObserveDraw", ports.EnginePickOrder, ports.OutcomeInvalidInput).Once()
		h := commands.NewDraftPickOrderCommandHandler(drafter, metrics)

		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, roster.ErrTooFewGroups)
		require.ErrorIs(t, err, roster.ErrInvalidInput)
		metrics.AssertExpectations(t)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		h := commands.NewDraftPickOrderCommandHandler(drafter, new(MockDrawMetrics))

		_, err := h.Handle(t.Context(), commands.DraftPickOrderCommand{})

		require.ErrorIs(t, err, commands.ErrDraftPickOrderCommandIsNotConstructed)
	})
}
