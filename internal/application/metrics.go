package application

import "expvar"

// Counters published under /api/debug/vars.
var (
	loginsTotal          = expvar.NewInt("logins_total")
	registrationsTotal   = expvar.NewInt("registrations_total")
	bookingsCreatedTotal = expvar.NewInt("bookings_created_total")
	bookingStatusUpdates = expvar.NewMap("booking_status_updates")
	postsCreatedTotal    = expvar.NewInt("posts_created_total")
)
