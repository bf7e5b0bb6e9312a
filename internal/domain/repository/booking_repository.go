package repository

import (
	"context"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

// BookingFilter narrows List results. Zero values match everything.
type BookingFilter struct {
	UserID int64
	HostID int64
	Status entity.BookingStatus
}

// BookingRepository persists bookings. Ids are assigned atomically per
// collection by the implementation.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, id int64) (*entity.Booking, error)
	List(ctx context.Context, f BookingFilter) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error)
	Delete(ctx context.Context, id int64) error
}
