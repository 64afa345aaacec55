package models

// Poll is a live poll inside one event's engagement bundle. Ids are
// unique within the event. The responses counter always equals the sum
// of OptionVotes values.
type Poll struct {
	ID          int            `json:"id"`
	Question    string         `json:"question"`
	Options     []string       `json:"options"`
	Responses   int            `json:"responses"`
	OptionVotes map[string]int `json:"option_votes"`
	Active      bool           `json:"active"`
	Created     string         `json:"created"`
}

// QAQuestion is a single audience question for an event.
type QAQuestion struct {
	ID        int    `json:"id"`
	Question  string `json:"question"`
	Answered  bool   `json:"answered"`
	Votes     int    `json:"votes"`
	Timestamp string `json:"timestamp"`
}

// EngagementBundle holds all live-engagement state for one event.
// Bundles are created lazily on first write.
type EngagementBundle struct {
	Polls          []Poll       `json:"polls"`
	QAQuestions    []QAQuestion `json:"qa_questions"`
	LiveAttendance int          `json:"live_attendance"`
	EngagementRate int          `json:"engagement_rate"`
}

// NewEngagementBundle returns the default empty bundle.
func NewEngagementBundle() EngagementBundle {
	return EngagementBundle{
		Polls:       []Poll{},
		QAQuestions: []QAQuestion{},
	}
}

// EngagementSnapshot is the computed view returned by
// GET /api/events/{id}/engagement.
type EngagementSnapshot struct {
	LiveAttendance int              `json:"live_attendance"`
	ActivePolls    int              `json:"active_polls"`
	QAQuestions    int              `json:"qa_questions"`
	EngagementRate int              `json:"engagement_rate"`
	Polls          []Poll           `json:"polls"`
	Questions      []QAQuestion     `json:"questions"`
	Breakdown      []BreakdownEntry `json:"breakdown"`
}

// BreakdownEntry is one named slice of an engagement breakdown chart.
type BreakdownEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CreatePollRequest is the POST /api/events/{id}/polls payload.
type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Active   *bool    `json:"active,omitempty"`
}

// VoteRequest is the POST .../polls/{poll_id}/vote payload.
type VoteRequest struct {
	Option string `json:"option"`
}

// CreateQuestionRequest is the POST /api/events/{id}/qa-questions payload.
type CreateQuestionRequest struct {
	Question string `json:"question"`
}

// EngagementUpdate is the POST /api/events/{id}/engagement payload: a
// shallow merge into the bundle. Only known fields are applied.
type EngagementUpdate struct {
	LiveAttendance *int `json:"live_attendance,omitempty"`
	EngagementRate *int `json:"engagement_rate,omitempty"`
}
