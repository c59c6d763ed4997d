package entities

import "phillymounting/internal/db"

// BookingEmailData feeds the booking confirmation, admin notification and
// reminder templates.
type BookingEmailData struct {
	Booking       db.Booking
	BusinessName  string
	BusinessEmail string
	CurrentYear   int
}

type ContactEmailData struct {
	Message      db.ContactMessage
	BusinessName string
	CurrentYear  int
}

// StatusEmailData feeds the status update template. StatusText is the new
// status ("confirmed" or "cancelled"), Cancelled selects the reschedule copy.
type StatusEmailData struct {
	Booking      db.Booking
	StatusText   string
	Cancelled    bool
	BusinessName string
	CurrentYear  int
}
