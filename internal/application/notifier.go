package application

import (
	"context"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

// Notifier is told about events users may want an e-mail for. Calls are
// best effort; implementations log their own failures.
type Notifier interface {
	UserRegistered(ctx context.Context, u entity.User)
	BookingCreated(ctx context.Context, b entity.Booking)
	BookingStatusChanged(ctx context.Context, b entity.Booking)
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) UserRegistered(context.Context, entity.User)          {}
func (NopNotifier) BookingCreated(context.Context, entity.Booking)       {}
func (NopNotifier) BookingStatusChanged(context.Context, entity.Booking) {}
