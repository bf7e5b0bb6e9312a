package entity

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	default:
		return false
	}
}

// ParseBookingStatus rejects anything outside the four known states.
func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return st, nil
}

// InitialBookingStatus is the status a new booking starts in for a creator
// with the given role: admins book straight into confirmed.
func InitialBookingStatus(creator Role) BookingStatus {
	if creator == RoleAdmin {
		return BookingConfirmed
	}
	return BookingPending
}

// Booking is a stay booked by a user (UserID) against a host (HostID).
// Dates are ISO-8601 strings and Price is a decimal string, matching what the
// web client sends.
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	HostID    int64         `json:"hostId"`
	Title     string        `json:"title"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Guests    string        `json:"guests"`
	Price     string        `json:"price"`
	Notes     *string       `json:"notes"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
