package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_AcceptsNumberAndString(t *testing.T) {
	var req CreateEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","capacity":500,"ticketPrice":"250000"}`), &req))
	assert.Equal(t, FlexInt(500), req.Capacity)
	assert.Equal(t, FlexInt(250000), req.TicketPrice)
}

func TestFlexInt_RejectsNonNumeric(t *testing.T) {
	var req CreateEventRequest
	err := json.Unmarshal([]byte(`{"capacity":"lots"}`), &req)
	assert.Error(t, err)
}

func TestFlexInt_EmptyValues(t *testing.T) {
	var req CreateEventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"capacity":null,"ticketPrice":""}`), &req))
	assert.Equal(t, FlexInt(0), req.Capacity)
	assert.Equal(t, FlexInt(0), req.TicketPrice)
}

func TestEventJSONKeys(t *testing.T) {
	b, err := json.Marshal(Event{ID: 1, TicketPrice: 100})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "ticketPrice")
	assert.Contains(t, m, "created_at")
	// Lifecycle timestamps only appear once stamped.
	assert.NotContains(t, m, "live_start_time")
	assert.NotContains(t, m, "end_time")
}
