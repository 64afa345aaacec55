package models

// TicketBundle tracks ticket sales for one event. Bundles are created
// lazily on first write; total_sold mirrors into the event's engagement
// bundle as live attendance.
type TicketBundle struct {
	TotalSold   int            `json:"total_sold"`
	Revenue     int            `json:"revenue"`
	TicketTypes map[string]int `json:"ticket_types"`
}

// NewTicketBundle returns the default empty bundle.
func NewTicketBundle() TicketBundle {
	return TicketBundle{TicketTypes: map[string]int{}}
}

// TicketUpdate is the POST /api/events/{id}/tickets payload: a shallow
// merge into the bundle.
type TicketUpdate struct {
	TotalSold   *int           `json:"total_sold,omitempty"`
	Revenue     *int           `json:"revenue,omitempty"`
	TicketTypes map[string]int `json:"ticket_types,omitempty"`
}

// Booking is one confirmed ticket booking. Immutable once created;
// bookings live only in memory and reset on restart.
type Booking struct {
	ID            int    `json:"id"`
	EventID       int    `json:"event_id"`
	AttendeeName  string `json:"attendee_name"`
	AttendeeEmail string `json:"attendee_email"`
	TicketPrice   int    `json:"ticket_price"`
	Currency      string `json:"currency"`
	BookingTime   string `json:"booking_time"`
	Status        string `json:"status"`
}

// LiveSalesSummary is the rolling view served by GET /api/live-sales.
// RecentBookings is newest-first and capped at 10 entries.
type LiveSalesSummary struct {
	TotalSales     int       `json:"total_sales"`
	TotalRevenue   int       `json:"total_revenue"`
	RecentBookings []Booking `json:"recent_bookings"`
}

// BookTicketRequest is the POST /api/book-ticket payload.
type BookTicketRequest struct {
	EventID       FlexInt  `json:"event_id"`
	AttendeeName  string   `json:"attendee_name"`
	AttendeeEmail string   `json:"attendee_email"`
	TicketPrice   *FlexInt `json:"ticket_price,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}
