package commands_test

import (
	"context"
	"fmt"

	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRosterRepository struct{ mock.Mock }

func (m *MockRosterRepository) Save(ctx context.Context, r *roster.Roster) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRosterRepository) Get(ctx context.Context, name string) (*roster.Roster, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*roster.Roster)
	return r, args.Error(1)
}

func (m *MockRosterRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, notices []ports.GroupNotice) []ports.NotificationResult {
	args := m.Called(ctx, notices)
	results, _ := args.Get(0).([]ports.NotificationResult)
	return results
}

type MockDrawMetrics struct{ mock.Mock }

func (m *MockDrawMetrics) ObserveDraw(engine, outcome string) {
	m.Called(engine, outcome)
}

func (m *MockDrawMetrics) ObserveAssignmentAttempts(attempts int) {
	m.Called(attempts)
}

func (m *MockDrawMetrics) ObserveNotification(status ports.NotificationStatus) {
	m.Called(status)
}

// entries builds groups "Family A", "Family B", ... of the given sizes with
// members "A1", "A2", ... and contact addresses familya@example.com, ...
func entries(sizes ...int) []roster.GroupEntry {
	out := make([]roster.GroupEntry, 0, len(sizes))
	for gi, size := range sizes {
		letter := string(rune('A' + gi))
		g := roster.GroupEntry{
			Name:  "Family " + letter,
			Email: fmt.Sprintf("family%c@example.com", 'a'+gi),
		}
		for mi := range size {
			g.Members = append(g.Members, roster.MemberEntry{Name: fmt.Sprintf("%s%d", letter, mi+1)})
		}
		out = append(out, g)
	}
	return out
}

// ranked assigns ranks 1..N round robin over the groups, the way an unbiased draft would.
func ranked(groups []roster.GroupEntry) []roster.GroupEntry {
	next := 1
	for round := 0; ; round++ {
		progressed := false
		for gi := range groups {
			if round < len(groups[gi].Members) {
				r := next
				groups[gi].Members[round].Rank = &r
				next++
				progressed = true
			}
		}
		if !progressed {
			return groups
		}
	}
}
