package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eventpro/event-management-service/internal/models"
)

func newTicketStores(t *testing.T) (*TicketStore, *EngagementStore, string) {
	t.Helper()
	dir := t.TempDir()
	engagement := NewEngagementStore(filepath.Join(dir, "engagement_data.json"), zap.NewNop())
	ticketsPath := filepath.Join(dir, "tickets_data.json")
	return NewTicketStore(ticketsPath, engagement, zap.NewNop()), engagement, ticketsPath
}

func TestTicketStore_DefaultBundle(t *testing.T) {
	s, _, _ := newTicketStores(t)

	b := s.Bundle(1)
	assert.Equal(t, 0, b.TotalSold)
	assert.Equal(t, 0, b.Revenue)
	assert.Empty(t, b.TicketTypes)
}

func TestTicketStore_Merge(t *testing.T) {
	s, _, _ := newTicketStores(t)

	sold, revenue := 25, 6250000
	s.Merge(1, models.TicketUpdate{
		TotalSold:   &sold,
		Revenue:     &revenue,
		TicketTypes: map[string]int{"regular": 20, "vip": 5},
	})

	b := s.Bundle(1)
	assert.Equal(t, 25, b.TotalSold)
	assert.Equal(t, 6250000, b.Revenue)
	assert.Equal(t, map[string]int{"regular": 20, "vip": 5}, b.TicketTypes)

	// Partial merge keeps previous fields.
	sold2 := 30
	s.Merge(1, models.TicketUpdate{TotalSold: &sold2})
	b = s.Bundle(1)
	assert.Equal(t, 30, b.TotalSold)
	assert.Equal(t, 6250000, b.Revenue)
}

func TestTicketStore_MergeMirrorsAttendance(t *testing.T) {
	s, engagement, _ := newTicketStores(t)

	// No engagement bundle yet: nothing to mirror into.
	sold := 10
	s.Merge(1, models.TicketUpdate{TotalSold: &sold})
	assert.Equal(t, 0, engagement.Snapshot(1).LiveAttendance)

	// Once the bundle exists, the sold total flows through.
	engagement.CreateQuestion(1, "q")
	sold = 42
	s.Merge(1, models.TicketUpdate{TotalSold: &sold})
	assert.Equal(t, 42, engagement.Snapshot(1).LiveAttendance)
	assert.Equal(t, 42, s.Bundle(1).TotalSold)
}

func TestTicketStore_RoundTrip(t *testing.T) {
	s, engagement, path := newTicketStores(t)

	sold := 5
	s.Merge(2, models.TicketUpdate{TotalSold: &sold, TicketTypes: map[string]int{"regular": 5}})

	reloaded := NewTicketStore(path, engagement, zap.NewNop())
	require.Equal(t, s.Bundle(2), reloaded.Bundle(2))
}
