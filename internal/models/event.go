package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Event statuses. An event starts as upcoming and moves forward only.
const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// Event is the core record managed by the event store. Ids are small
// monotonic integers assigned at creation; events are never deleted.
type Event struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	Capacity      int    `json:"capacity"`
	TicketPrice   int    `json:"ticketPrice"`
	Currency      string `json:"currency"`
	Image         string `json:"image"`
	Attendees     int    `json:"attendees"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	LiveStartTime string `json:"live_start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
}

// FlexInt accepts a JSON number or a numeric string. Clients send
// capacity/ticketPrice both ways; anything that cannot coerce to an
// integer is a decode error.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("value %s is not an integer", string(b))
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// CreateEventRequest is the POST /api/create-event payload.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Capacity    FlexInt `json:"capacity"`
	TicketPrice FlexInt `json:"ticketPrice"`
	Currency    string  `json:"currency"`
	Image       string  `json:"image"`
}
