package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

func goaTrip(hostID int64) CreateBookingInput {
	return CreateBookingInput{
		HostID: hostID, Title: "Goa Trip", StartDate: "2024-01-01", EndDate: "2024-01-05",
		Guests: "2", Price: "20000",
	}
}

func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	n := &recordingNotifier{}
	svc := NewBookingService(store.Bookings(), n, quietLogger())

	admin := seedUser(t, store, "admin", entity.RoleAdmin)
	host := seedUser(t, store, "host", entity.RoleHost)
	traveler := seedUser(t, store, "traveler", entity.RoleTraveler)

	b, err := svc.Create(ctx, traveler, goaTrip(host.ID))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingPending, b.Status)
	assert.Equal(t, traveler.ID, b.UserID)
	assert.Len(t, n.created, 1)

	confirmed, err := svc.UpdateStatus(ctx, admin, b.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, confirmed.Status)
	assert.Len(t, n.changed, 1)

	rev, err := svc.Revenue(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, rev.TotalRevenue)
	assert.Equal(t, 20000.0, rev.MonthlyRevenue["2024-01"])
	assert.Equal(t, 20000.0, rev.RevenueByHost[host.ID])

	// any transition is accepted, including back out of a terminal state
	_, err = svc.UpdateStatus(ctx, host, b.ID, "completed")
	require.NoError(t, err)
	back, err := svc.UpdateStatus(ctx, host, b.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingPending, back.Status)
}

func TestAdminBookingsStartConfirmed(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewBookingService(store.Bookings(), nil, quietLogger())
	admin := seedUser(t, store, "admin", entity.RoleAdmin)

	b, err := svc.Create(ctx, admin, goaTrip(2))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, b.Status)
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewBookingService(store.Bookings(), nil, quietLogger())
	traveler := seedUser(t, store, "t", entity.RoleTraveler)

	cases := map[string]struct {
		mutate func(*CreateBookingInput)
		msg    string
	}{
		"no host":          {func(in *CreateBookingInput) { in.HostID = 0 }, "Host selection is required"},
		"blank title":      {func(in *CreateBookingInput) { in.Title = "  " }, "Title is required"},
		"no start":         {func(in *CreateBookingInput) { in.StartDate = "" }, "Start date is required"},
		"no end":           {func(in *CreateBookingInput) { in.EndDate = "" }, "End date is required"},
		"no guests":        {func(in *CreateBookingInput) { in.Guests = "" }, "Guests information is required"},
		"no price":         {func(in *CreateBookingInput) { in.Price = "" }, "Price is required"},
		"end before start": {func(in *CreateBookingInput) { in.EndDate = "2023-12-31" }, "End date must be on or after start date"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := goaTrip(1)
			tc.mutate(&in)
			_, err := svc.Create(ctx, traveler, in)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, tc.msg, apperror.Message(err))
		})
	}

	// unparsable dates are stored as given
	in := goaTrip(1)
	in.StartDate, in.EndDate = "soon", "later"
	_, err := svc.Create(ctx, traveler, in)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, nil, goaTrip(1))
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestBookingRoleMatrix(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := NewBookingService(store.Bookings(), nil, quietLogger())

	host := seedUser(t, store, "host", entity.RoleHost)
	otherHost := seedUser(t, store, "other", entity.RoleHost)
	traveler := seedUser(t, store, "traveler", entity.RoleTraveler)
	stranger := seedUser(t, store, "stranger", entity.RoleTraveler)

	b, err := svc.Create(ctx, traveler, goaTrip(host.ID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, traveler, b.ID, "confirmed")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = svc.UpdateStatus(ctx, otherHost, b.ID, "confirmed")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = svc.UpdateStatus(ctx, host, b.ID, "bogus")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	_, err = svc.UpdateStatus(ctx, host, 999, "confirmed")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Get(ctx, stranger, b.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = svc.Get(ctx, host, b.ID)
	assert.NoError(t, err)

	hostView, err := svc.List(ctx, host)
	require.NoError(t, err)
	assert.Len(t, hostView, 1)
	strangerView, err := svc.List(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, strangerView)

	_, err = svc.ListAll(ctx, host)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	_, err = svc.Revenue(ctx, traveler)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, stranger, b.ID), apperror.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, otherHost, b.ID), apperror.ErrForbidden)
	assert.NoError(t, svc.Delete(ctx, host, b.ID))
	assert.ErrorIs(t, svc.Delete(ctx, traveler, b.ID), apperror.ErrNotFound)
}
