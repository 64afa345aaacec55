package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/eventpro/event-management-service/internal/models"
)

// TicketStore maps event ids to ticket-sales bundles. A ticket update
// also mirrors the sold total into the event's engagement bundle as
// live attendance; Merge performs both updates as one unit so the two
// stores never show divergent attendance figures.
type TicketStore struct {
	mu         sync.Mutex
	bundles    map[string]*models.TicketBundle
	file       snapshot
	engagement *EngagementStore
}

func NewTicketStore(path string, engagement *EngagementStore, log *zap.Logger) *TicketStore {
	s := &TicketStore{
		bundles:    map[string]*models.TicketBundle{},
		file:       snapshot{path: path, log: log},
		engagement: engagement,
	}
	s.file.load(&s.bundles)
	if s.bundles == nil {
		s.bundles = map[string]*models.TicketBundle{}
	}
	return s
}

// Bundle returns the event's ticket bundle, or the empty default for an
// unknown event. Reads never persist the default.
func (s *TicketStore) Bundle(eventID int) models.TicketBundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bundles[key(eventID)]
	if !ok {
		return models.NewTicketBundle()
	}
	out := *b
	out.TicketTypes = make(map[string]int, len(b.TicketTypes))
	for k, v := range b.TicketTypes {
		out.TicketTypes[k] = v
	}
	return out
}

// Merge shallow-merges the supplied fields into the event's bundle,
// creating it first when absent, then mirrors the sold total into the
// engagement store.
// Lock order is tickets then engagement; the engagement store never
// calls back into tickets.
func (s *TicketStore) Merge(eventID int, upd models.TicketUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(eventID)
	b, ok := s.bundles[k]
	if !ok {
		nb := models.NewTicketBundle()
		b = &nb
		s.bundles[k] = b
	}
	if upd.TotalSold != nil {
		b.TotalSold = *upd.TotalSold
	}
	if upd.Revenue != nil {
		b.Revenue = *upd.Revenue
	}
	if upd.TicketTypes != nil {
		b.TicketTypes = upd.TicketTypes
	}
	s.file.save(s.bundles)
	s.engagement.setLiveAttendance(eventID, b.TotalSold)
}
