package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

type BookingService struct {
	bookings repository.BookingRepository
	notifier Notifier
	logger   *logrus.Logger
}

func NewBookingService(bookings repository.BookingRepository, notifier Notifier, logger *logrus.Logger) *BookingService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &BookingService{bookings: bookings, notifier: notifier, logger: logger}
}

// CreateBookingInput carries request values already normalised to strings;
// HostID is 0 when missing or not a number.
type CreateBookingInput struct {
	HostID    int64
	Title     string
	StartDate string
	EndDate   string
	Guests    string
	Price     string
	Notes     *string
}

func (in *CreateBookingInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	in.Guests = strings.TrimSpace(in.Guests)
	in.Price = strings.TrimSpace(in.Price)
	if in.Notes != nil {
		n := strings.TrimSpace(*in.Notes)
		in.Notes = &n
	}
}

func (in CreateBookingInput) validate() error {
	switch {
	case in.HostID < 1:
		return apperror.Validation("Host selection is required")
	case in.Title == "":
		return apperror.Validation("Title is required")
	case in.StartDate == "":
		return apperror.Validation("Start date is required")
	case in.EndDate == "":
		return apperror.Validation("End date is required")
	case in.Guests == "":
		return apperror.Validation("Guests information is required")
	case in.Price == "":
		return apperror.Validation("Price is required")
	}
	start, okStart := helpers.ParseDate(in.StartDate)
	end, okEnd := helpers.ParseDate(in.EndDate)
	if okStart && okEnd && end.Before(start) {
		return apperror.Validation("End date must be on or after start date")
	}
	return nil
}

// Create books a stay for the caller. Admin bookings start confirmed,
// everyone else's start pending.
func (s *BookingService) Create(ctx context.Context, caller *policy.Caller, in CreateBookingInput) (*entity.Booking, error) {
	if err := policy.Can(caller, policy.CreateBooking); err != nil {
		return nil, err
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}
	b := &entity.Booking{
		UserID:    caller.ID,
		HostID:    in.HostID,
		Title:     in.Title,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Guests:    in.Guests,
		Price:     in.Price,
		Notes:     in.Notes,
		Status:    entity.InitialBookingStatus(caller.Role),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	bookingsCreatedTotal.Add(1)
	s.logger.WithFields(logrus.Fields{"booking_id": b.ID, "user_id": b.UserID, "host_id": b.HostID, "status": b.Status}).Info("booking created")
	s.notifier.BookingCreated(ctx, *b)
	return b, nil
}

// List returns what the caller may see: everything for admins, bookings
// made against a host for hosts, own bookings for travelers.
func (s *BookingService) List(ctx context.Context, caller *policy.Caller) ([]entity.Booking, error) {
	if policy.Can(caller, policy.ListAllBookings) == nil {
		return s.bookings.List(ctx, repository.BookingFilter{})
	}
	if err := policy.Can(caller, policy.ListOwnBookings); err != nil {
		return nil, err
	}
	var f repository.BookingFilter
	if caller.Role == entity.RoleHost {
		f.HostID = caller.ID
	} else {
		f.UserID = caller.ID
	}
	return s.bookings.List(ctx, f)
}

// ListAll is the admin view of every booking.
func (s *BookingService) ListAll(ctx context.Context, caller *policy.Caller) ([]entity.Booking, error) {
	if err := policy.Can(caller, policy.AdminBookings); err != nil {
		return nil, err
	}
	return s.bookings.List(ctx, repository.BookingFilter{})
}

func (s *BookingService) Get(ctx context.Context, caller *policy.Caller, id int64) (*entity.Booking, error) {
	if err := policy.Authorize(caller, entity.Roles()...); err != nil {
		return nil, err
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanViewBooking(caller, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves a booking to status. Any of the four statuses may
// follow any other.
func (s *BookingService) UpdateStatus(ctx context.Context, caller *policy.Caller, id int64, status string) (*entity.Booking, error) {
	if err := policy.Can(caller, policy.UpdateBookingStatus); err != nil {
		return nil, err
	}
	st, err := entity.ParseBookingStatus(strings.TrimSpace(status))
	if err != nil {
		return nil, apperror.Validation("Invalid status")
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdateBookingStatus(caller, b); err != nil {
		return nil, err
	}
	updated, err := s.bookings.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	bookingStatusUpdates.Add(string(st), 1)
	s.logger.WithFields(logrus.Fields{"booking_id": id, "from": b.Status, "to": st, "by": caller.ID}).Info("booking status updated")
	if b.Status != st {
		s.notifier.BookingStatusChanged(ctx, *updated)
	}
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, caller *policy.Caller, id int64) error {
	if err := policy.Can(caller, policy.DeleteBooking); err != nil {
		return err
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanDeleteBooking(caller, b); err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"booking_id": id, "by": caller.ID}).Info("booking deleted")
	return nil
}

// Revenue aggregates confirmed bookings for the admin dashboard.
func (s *BookingService) Revenue(ctx context.Context, caller *policy.Caller) (*Revenue, error) {
	if err := policy.Can(caller, policy.AdminRevenue); err != nil {
		return nil, err
	}
	all, err := s.bookings.List(ctx, repository.BookingFilter{Status: entity.BookingConfirmed})
	if err != nil {
		return nil, err
	}
	r := AggregateRevenue(all)
	return &r, nil
}
