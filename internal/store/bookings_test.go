package store

import (
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpro/event-management-service/internal/models"
)

func TestBookingLedger_BookDefaults(t *testing.T) {
	l := NewBookingLedger()

	b := l.Book(models.BookTicketRequest{
		EventID:       1,
		AttendeeName:  "Jane Doe",
		AttendeeEmail: "jane@example.com",
	})
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, 250000, b.TicketPrice)
	assert.Equal(t, "INR", b.Currency)
	assert.Equal(t, "confirmed", b.Status)
	assert.NotEmpty(t, b.BookingTime)

	price := models.FlexInt(99)
	b2 := l.Book(models.BookTicketRequest{
		EventID:       1,
		AttendeeName:  "John Doe",
		AttendeeEmail: "john@example.com",
		TicketPrice:   &price,
		Currency:      "USD",
	})
	assert.Equal(t, 2, b2.ID)
	assert.Equal(t, 99, b2.TicketPrice)
	assert.Equal(t, "USD", b2.Currency)
}

// Booking records whatever event id the caller supplies; there is no
// existence check against the event store. This documents the current
// contract rather than endorsing it.
func TestBookingLedger_AcceptsUnknownEventID(t *testing.T) {
	l := NewBookingLedger()

	b := l.Book(models.BookTicketRequest{
		EventID:       9999,
		AttendeeName:  "Ghost",
		AttendeeEmail: "ghost@example.com",
	})
	assert.Equal(t, 9999, b.EventID)
}

func TestBookingLedger_LiveSalesCapsRecentAtTen(t *testing.T) {
	l := NewBookingLedger()

	for i := 1; i <= 11; i++ {
		price := models.FlexInt(100)
		l.Book(models.BookTicketRequest{
			EventID:       1,
			AttendeeName:  fmt.Sprintf("Attendee %d", i),
			AttendeeEmail: fmt.Sprintf("a%d@example.com", i),
			TicketPrice:   &price,
		})
	}

	s := l.LiveSales()
	assert.Equal(t, 11, s.TotalSales)
	assert.Equal(t, 1100, s.TotalRevenue)
	require.Len(t, s.RecentBookings, 10)

	// Newest first: booking 11 down to booking 2.
	assert.Equal(t, 11, s.RecentBookings[0].ID)
	assert.Equal(t, 2, s.RecentBookings[9].ID)
}

func TestBookingLedger_ExportCSV(t *testing.T) {
	l := NewBookingLedger()
	l.Book(models.BookTicketRequest{EventID: 1, AttendeeName: "Jane", AttendeeEmail: "jane@example.com"})
	l.Book(models.BookTicketRequest{EventID: 2, AttendeeName: "John", AttendeeEmail: "john@example.com"})

	data, err := l.ExportCSV()
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Booking ID", "Event ID", "Attendee Name", "Email", "Ticket Price", "Currency", "Booking Time", "Status"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Jane", rows[1][2])
	assert.Equal(t, "confirmed", rows[1][7])
	assert.Equal(t, "2", rows[2][0])
}

func TestBookingLedger_ExportCSVEmpty(t *testing.T) {
	l := NewBookingLedger()

	data, err := l.ExportCSV()
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
