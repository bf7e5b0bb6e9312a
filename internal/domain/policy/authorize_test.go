package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
)

var (
	admin    = &policy.Caller{ID: 1, Role: entity.RoleAdmin}
	host     = &policy.Caller{ID: 2, Role: entity.RoleHost}
	host2    = &policy.Caller{ID: 3, Role: entity.RoleHost}
	traveler = &policy.Caller{ID: 4, Role: entity.RoleTraveler}
	stranger = &policy.Caller{ID: 5, Role: entity.RoleTraveler}
)

func TestAuthorize_AnonymousIsUnauthenticated(t *testing.T) {
	err := policy.Authorize(nil, entity.RoleAdmin)

	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.NotErrorIs(t, err, apperror.ErrForbidden)
}

func TestAuthorize_WrongRoleIsForbidden(t *testing.T) {
	err := policy.Authorize(traveler, entity.RoleAdmin, entity.RoleHost)

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCan_RoleTable(t *testing.T) {
	tests := []struct {
		op      policy.Operation
		allowed []*policy.Caller
		denied  []*policy.Caller
	}{
		{policy.ListAllBookings, []*policy.Caller{admin}, []*policy.Caller{host, traveler}},
		{policy.ListOwnBookings, []*policy.Caller{host, traveler}, []*policy.Caller{admin}},
		{policy.CreateBooking, []*policy.Caller{admin, host, traveler}, nil},
		{policy.UpdateBookingStatus, []*policy.Caller{admin, host}, []*policy.Caller{traveler}},
		{policy.CreatePost, []*policy.Caller{admin, host}, []*policy.Caller{traveler}},
		{policy.AdminUsers, []*policy.Caller{admin}, []*policy.Caller{host, traveler}},
		{policy.AdminRevenue, []*policy.Caller{admin}, []*policy.Caller{host, traveler}},
	}
	for _, tc := range tests {
		t.Run(string(tc.op), func(t *testing.T) {
			for _, c := range tc.allowed {
				assert.NoError(t, policy.Can(c, tc.op), "role %s", c.Role)
			}
			for _, c := range tc.denied {
				assert.ErrorIs(t, policy.Can(c, tc.op), apperror.ErrForbidden, "role %s", c.Role)
			}
			assert.ErrorIs(t, policy.Can(nil, tc.op), apperror.ErrUnauthenticated)
		})
	}
}

func TestCanUpdateBookingStatus(t *testing.T) {
	b := &entity.Booking{ID: 10, UserID: traveler.ID, HostID: host.ID}

	assert.NoError(t, policy.CanUpdateBookingStatus(admin, b))
	assert.NoError(t, policy.CanUpdateBookingStatus(host, b))
	assert.ErrorIs(t, policy.CanUpdateBookingStatus(host2, b), apperror.ErrForbidden)
	// the traveler who made the booking still may not change its status
	assert.ErrorIs(t, policy.CanUpdateBookingStatus(traveler, b), apperror.ErrForbidden)
	assert.ErrorIs(t, policy.CanUpdateBookingStatus(nil, b), apperror.ErrUnauthenticated)
}

func TestCanDeleteBooking(t *testing.T) {
	b := &entity.Booking{ID: 10, UserID: traveler.ID, HostID: host.ID}

	assert.NoError(t, policy.CanDeleteBooking(admin, b))
	assert.NoError(t, policy.CanDeleteBooking(host, b))
	assert.NoError(t, policy.CanDeleteBooking(traveler, b))
	assert.ErrorIs(t, policy.CanDeleteBooking(host2, b), apperror.ErrForbidden)
	assert.ErrorIs(t, policy.CanDeleteBooking(stranger, b), apperror.ErrForbidden)
}

func TestCanViewBooking(t *testing.T) {
	b := &entity.Booking{ID: 10, UserID: traveler.ID, HostID: host.ID}

	assert.NoError(t, policy.CanViewBooking(admin, b))
	assert.NoError(t, policy.CanViewBooking(host, b))
	assert.NoError(t, policy.CanViewBooking(traveler, b))
	assert.ErrorIs(t, policy.CanViewBooking(stranger, b), apperror.ErrForbidden)
}

func TestCanDeletePost(t *testing.T) {
	p := &entity.Post{ID: 7, UserID: host.ID}

	assert.NoError(t, policy.CanDeletePost(admin, p))
	assert.NoError(t, policy.CanDeletePost(host, p))
	assert.ErrorIs(t, policy.CanDeletePost(host2, p), apperror.ErrForbidden)
	assert.ErrorIs(t, policy.CanDeletePost(nil, p), apperror.ErrUnauthenticated)
}

func TestCan_OperationDeniedMessage(t *testing.T) {
	err := policy.Can(traveler, policy.CreatePost)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
	assert.Equal(t, "Only hosts and admins can create posts", apperror.Message(err))

	err = policy.Can(traveler, policy.AdminUsers)
	assert.Equal(t, "Insufficient permissions", apperror.Message(err))

	// anonymous callers still get the 401 message
	assert.Equal(t, "Not authenticated", apperror.Message(policy.Can(nil, policy.CreatePost)))
}
