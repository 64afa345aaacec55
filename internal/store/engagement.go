package store

import (
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eventpro/event-management-service/internal/models"
)

// EngagementStore maps event ids to their engagement bundles (polls,
// Q&A questions, live attendance). Bundles are created lazily on first
// write; reads never persist a default bundle. The on-disk document is
// keyed by the event id as a string.
type EngagementStore struct {
	mu      sync.Mutex
	bundles map[string]*models.EngagementBundle
	file    snapshot
}

func NewEngagementStore(path string, log *zap.Logger) *EngagementStore {
	s := &EngagementStore{
		bundles: map[string]*models.EngagementBundle{},
		file:    snapshot{path: path, log: log},
	}
	s.file.load(&s.bundles)
	if s.bundles == nil {
		s.bundles = map[string]*models.EngagementBundle{}
	}
	return s
}

func key(eventID int) string { return strconv.Itoa(eventID) }

// bundle returns the stored bundle, creating it when create is set.
// Callers hold the mutex.
func (s *EngagementStore) bundle(eventID int, create bool) *models.EngagementBundle {
	k := key(eventID)
	b, ok := s.bundles[k]
	if !ok && create {
		nb := models.NewEngagementBundle()
		b = &nb
		s.bundles[k] = b
	}
	return b
}

// Polls returns the event's polls; an unknown event has none.
func (s *EngagementStore) Polls(eventID int) []models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bundle(eventID, false)
	if b == nil {
		return []models.Poll{}
	}
	return clonePolls(b.Polls)
}

// Questions returns the event's Q&A questions; an unknown event has none.
func (s *EngagementStore) Questions(eventID int) []models.QAQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bundle(eventID, false)
	if b == nil {
		return []models.QAQuestion{}
	}
	out := make([]models.QAQuestion, len(b.QAQuestions))
	copy(out, b.QAQuestions)
	return out
}

// CreatePoll adds a poll to the event's bundle. The poll id is one past
// the current poll count; every option starts with zero votes.
func (s *EngagementStore) CreatePoll(eventID int, req models.CreatePollRequest) models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bundle(eventID, true)

	votes := make(map[string]int, len(req.Options))
	for _, opt := range req.Options {
		votes[opt] = 0
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	options := req.Options
	if options == nil {
		options = []string{}
	}

	poll := models.Poll{
		ID:          len(b.Polls) + 1,
		Question:    req.Question,
		Options:     options,
		OptionVotes: votes,
		Active:      active,
		Created:     time.Now().Format(time.RFC3339),
	}
	b.Polls = append(b.Polls, poll)
	s.file.save(s.bundles)
	return clonePoll(poll)
}

// Vote records one vote for an option of an event's poll. The responses
// counter stays equal to the sum of per-option votes.
func (s *EngagementStore) Vote(eventID, pollID int, option string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bundle(eventID, false)
	if b == nil {
		return models.Poll{}, ErrNotFound
	}
	for i := range b.Polls {
		if b.Polls[i].ID != pollID {
			continue
		}
		if _, ok := b.Polls[i].OptionVotes[option]; !ok {
			return models.Poll{}, ErrInvalidOption
		}
		b.Polls[i].OptionVotes[option]++
		b.Polls[i].Responses++
		s.file.save(s.bundles)
		return clonePoll(b.Polls[i]), nil
	}
	return models.Poll{}, ErrNotFound
}

// CreateQuestion adds a Q&A question to the event's bundle.
func (s *EngagementStore) CreateQuestion(eventID int, question string) models.QAQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bundle(eventID, true)
	q := models.QAQuestion{
		ID:        len(b.QAQuestions) + 1,
		Question:  question,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	b.QAQuestions = append(b.QAQuestions, q)
	s.file.save(s.bundles)
	return q
}

// Snapshot computes the engagement view for an event. Unknown events
// yield the empty default without persisting anything.
func (s *EngagementStore) Snapshot(eventID int) models.EngagementSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bundle(eventID, false)
	if b == nil {
		nb := models.NewEngagementBundle()
		b = &nb
	}

	active := 0
	totalResponses := 0
	for _, p := range b.Polls {
		if p.Active {
			active++
		}
		totalResponses += p.Responses
	}

	rate := 0
	if len(b.Polls) > 0 || len(b.QAQuestions) > 0 {
		rate = 75 + (totalResponses+len(b.QAQuestions))/10
		if rate > 95 {
			rate = 95
		}
	}

	questions := make([]models.QAQuestion, len(b.QAQuestions))
	copy(questions, b.QAQuestions)

	return models.EngagementSnapshot{
		LiveAttendance: b.LiveAttendance,
		ActivePolls:    active,
		QAQuestions:    len(b.QAQuestions),
		EngagementRate: rate,
		Polls:          clonePolls(b.Polls),
		Questions:      questions,
		Breakdown: []models.BreakdownEntry{
			{Name: "Poll Participation", Value: 40},
			{Name: "Q&A Sessions", Value: 32},
			{Name: "Chat Activity", Value: 28},
		},
	}
}

// Merge shallow-merges the supplied fields into the event's bundle,
// creating it first when absent.
func (s *EngagementStore) Merge(eventID int, upd models.EngagementUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bundle(eventID, true)
	if upd.LiveAttendance != nil {
		b.LiveAttendance = *upd.LiveAttendance
	}
	if upd.EngagementRate != nil {
		b.EngagementRate = *upd.EngagementRate
	}
	s.file.save(s.bundles)
}

// setLiveAttendance mirrors the ticket total into an existing bundle.
// Events without an engagement bundle are left untouched.
func (s *EngagementStore) setLiveAttendance(eventID, attendance int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bundle(eventID, false)
	if b == nil {
		return
	}
	b.LiveAttendance = attendance
	s.file.save(s.bundles)
}

func clonePoll(p models.Poll) models.Poll {
	out := p
	out.Options = append([]string(nil), p.Options...)
	out.OptionVotes = make(map[string]int, len(p.OptionVotes))
	for k, v := range p.OptionVotes {
		out.OptionVotes[k] = v
	}
	return out
}

func clonePolls(polls []models.Poll) []models.Poll {
	out := make([]models.Poll, len(polls))
	for i, p := range polls {
		out[i] = clonePoll(p)
	}
	return out
}
