package store

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"sync"
	"time"

	"github.com/eventpro/event-management-service/internal/models"
)

const (
	defaultTicketPrice = 250000
	defaultCurrency    = "INR"

	// recentBookingsCap bounds the live-sales recent list.
	recentBookingsCap = 10
)

// BookingLedger is the append-only list of ticket bookings plus the
// rolling live-sales summary. Bookings are memory-only and reset on
// restart.
type BookingLedger struct {
	mu       sync.Mutex
	bookings []models.Booking
	summary  models.LiveSalesSummary
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{
		summary: models.LiveSalesSummary{RecentBookings: []models.Booking{}},
	}
}

// Book appends a confirmed booking and updates the live-sales summary
// in the same critical section. The event id is recorded as supplied;
// it is not checked against the event store.
func (l *BookingLedger) Book(req models.BookTicketRequest) models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	price := defaultTicketPrice
	if req.TicketPrice != nil {
		price = int(*req.TicketPrice)
	}
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	b := models.Booking{
		ID:            len(l.bookings) + 1,
		EventID:       int(req.EventID),
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		TicketPrice:   price,
		Currency:      currency,
		BookingTime:   time.Now().Format(time.RFC3339),
		Status:        "confirmed",
	}
	l.bookings = append(l.bookings, b)

	l.summary.TotalSales++
	l.summary.TotalRevenue += b.TicketPrice
	l.summary.RecentBookings = append([]models.Booking{b}, l.summary.RecentBookings...)
	if len(l.summary.RecentBookings) > recentBookingsCap {
		l.summary.RecentBookings = l.summary.RecentBookings[:recentBookingsCap]
	}
	return b
}

// LiveSales returns the current rolling summary.
func (l *BookingLedger) LiveSales() models.LiveSalesSummary {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.summary
	out.RecentBookings = append([]models.Booking(nil), l.summary.RecentBookings...)
	return out
}

// ExportCSV renders the full ledger as CSV, one row per booking in
// ledger order.
func (l *BookingLedger) ExportCSV() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Booking ID", "Event ID", "Attendee Name", "Email", "Ticket Price", "Currency", "Booking Time", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, b := range l.bookings {
		row := []string{
			strconv.Itoa(b.ID),
			strconv.Itoa(b.EventID),
			b.AttendeeName,
			b.AttendeeEmail,
			strconv.Itoa(b.TicketPrice),
			b.Currency,
			b.BookingTime,
			b.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
