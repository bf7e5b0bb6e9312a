package jsonfile

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type bookingRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	HostID    int64     `json:"hostId"`
	Title     string    `json:"title"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Guests    string    `json:"guests"`
	Price     string    `json:"price"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r bookingRecord) key() int64 { return r.ID }

func (r bookingRecord) toEntity() (entity.Booking, error) {
	st, err := entity.ParseBookingStatus(r.Status)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("booking %d: %w", r.ID, err)
	}
	return entity.Booking{
		ID: r.ID, UserID: r.UserID, HostID: r.HostID, Title: r.Title,
		StartDate: r.StartDate, EndDate: r.EndDate, Guests: r.Guests, Price: r.Price,
		Notes: r.Notes, Status: st, CreatedAt: r.CreatedAt,
	}, nil
}

func bookingRecordOf(b *entity.Booking) bookingRecord {
	return bookingRecord{
		ID: b.ID, UserID: b.UserID, HostID: b.HostID, Title: b.Title,
		StartDate: b.StartDate, EndDate: b.EndDate, Guests: b.Guests, Price: b.Price,
		Notes: b.Notes, Status: string(b.Status), CreatedAt: b.CreatedAt,
	}
}

type BookingRepository struct {
	c *collection[bookingRecord]
}

func (r *BookingRepository) Create(_ context.Context, b *entity.Booking) error {
	return r.c.mutate(func(items []bookingRecord) ([]bookingRecord, error) {
		b.ID = nextID(items)
		if b.CreatedAt.IsZero() {
			b.CreatedAt = time.Now().UTC()
		}
		return append(items, bookingRecordOf(b)), nil
	})
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*entity.Booking, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			b, err := it.toEntity()
			if err != nil {
				return nil, err
			}
			return &b, nil
		}
	}
	return nil, apperror.NotFound("Booking not found")
}

func (r *BookingRepository) List(_ context.Context, f repository.BookingFilter) ([]entity.Booking, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Booking, 0, len(items))
	for _, it := range items {
		if f.UserID != 0 && it.UserID != f.UserID {
			continue
		}
		if f.HostID != 0 && it.HostID != f.HostID {
			continue
		}
		if f.Status != "" && it.Status != string(f.Status) {
			continue
		}
		b, err := it.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id int64, status entity.BookingStatus) (*entity.Booking, error) {
	var updated entity.Booking
	err := r.c.mutate(func(items []bookingRecord) ([]bookingRecord, error) {
		idx := slices.IndexFunc(items, func(it bookingRecord) bool { return it.ID == id })
		if idx < 0 {
			return nil, apperror.NotFound("Booking not found")
		}
		items[idx].Status = string(status)
		b, err := items[idx].toEntity()
		if err != nil {
			return nil, err
		}
		updated = b
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	return r.c.mutate(func(items []bookingRecord) ([]bookingRecord, error) {
		idx := slices.IndexFunc(items, func(it bookingRecord) bool { return it.ID == id })
		if idx < 0 {
			return nil, apperror.NotFound("Booking not found")
		}
		return slices.Delete(items, idx, idx+1), nil
	})
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
