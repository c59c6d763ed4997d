package db

import "time"

// Booking statuses. There is no transition graph: the admin may move a
// booking from any status to any other.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	MessageStatusNew       = "new"
	MessageStatusRead      = "read"
	MessageStatusResponded = "responded"
)

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func ValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusNew, MessageStatusRead, MessageStatusResponded:
		return true
	}
	return false
}

type Booking struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	ZipCode        string    `json:"zipCode"`
	Date           string    `json:"date"`
	TimeSlot       string    `json:"timeSlot"`
	Services       string    `json:"services"`
	EstimatedTotal string    `json:"estimatedTotal"`
	Notes          string    `json:"notes"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
