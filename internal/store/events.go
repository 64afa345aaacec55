package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eventpro/event-management-service/internal/models"
)

// EventStore owns the ordered list of events. Every mutation is
// serialized by the mutex and flushed to disk inside the critical
// section, so the on-disk snapshot never interleaves two writers.
type EventStore struct {
	mu     sync.Mutex
	events []models.Event
	file   snapshot
}

// NewEventStore loads the events file. A missing or unreadable file is
// seeded with the two sample events; a file that holds an empty list
// stays empty.
func NewEventStore(path string, log *zap.Logger) *EventStore {
	s := &EventStore{file: snapshot{path: path, log: log}}
	if !s.file.load(&s.events) {
		s.events = seedEvents()
		s.file.save(s.events)
	}
	return s
}

// Create appends a new event. The id is one past the current maximum,
// status starts as upcoming with zero attendees.
func (s *EventStore) Create(req models.CreateEventRequest) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, e := range s.events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	image := req.Image
	if image == "" {
		image = "/static/images/default-event.jpg"
	}

	ev := models.Event{
		ID:          maxID + 1,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    int(req.Capacity),
		TicketPrice: int(req.TicketPrice),
		Currency:    currency,
		Image:       image,
		Status:      models.StatusUpcoming,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	s.events = append(s.events, ev)
	s.file.save(s.events)
	return ev
}

// Get returns the event with the given id, or ErrNotFound.
func (s *EventStore) Get(id int) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, ErrNotFound
}

// List returns all events in insertion order.
func (s *EventStore) List() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// GoLive marks the event as live and stamps live_start_time.
func (s *EventStore) GoLive(id int) (models.Event, error) {
	return s.transition(id, models.StatusLive)
}

// End marks the event as completed and stamps end_time.
func (s *EventStore) End(id int) (models.Event, error) {
	return s.transition(id, models.StatusCompleted)
}

func (s *EventStore) transition(id int, status string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		s.events[i].Status = status
		now := time.Now().Format(time.RFC3339)
		switch status {
		case models.StatusLive:
			s.events[i].LiveStartTime = now
		case models.StatusCompleted:
			s.events[i].EndTime = now
		}
		s.file.save(s.events)
		return s.events[i], nil
	}
	return models.Event{}, ErrNotFound
}

// seedEvents provides starter content so a fresh install is not empty.
func seedEvents() []models.Event {
	now := time.Now().Format(time.RFC3339)
	return []models.Event{
		{
			ID:          1,
			Title:       "Tech Conference 2024",
			Description: "Annual technology conference featuring the latest innovations",
			Date:        "2024-03-15",
			Time:        "09:00",
			Location:    "Convention Center, Jakarta",
			Capacity:    500,
			TicketPrice: 250000,
			Currency:    "INR",
			Image:       "/static/images/tech-conference.jpg",
			Status:      models.StatusUpcoming,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Music Festival",
			Description: "Three-day music festival with international artists",
			Date:        "2024-04-20",
			Time:        "18:00",
			Location:    "City Park, Jakarta",
			Capacity:    1000,
			TicketPrice: 450000,
			Currency:    "INR",
			Image:       "/static/images/music-festival.jpg",
			Status:      models.StatusUpcoming,
			CreatedAt:   now,
		},
	}
}
