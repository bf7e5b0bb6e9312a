// Package policy is the authorization layer: a pure function of the caller's
// role (and, for owned records, the caller's id) deciding whether an
// operation may run.
package policy

import (
	"errors"
	"slices"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

// Caller is the authenticated principal of a request.
type Caller struct {
	ID   int64
	Role entity.Role
}

// CallerOf builds a Caller from a user; nil stays nil (anonymous).
func CallerOf(u *entity.User) *Caller {
	if u == nil {
		return nil
	}
	return &Caller{ID: u.ID, Role: u.Role}
}

type Operation string

const (
	ListAllBookings     Operation = "bookings:list-all"
	ListOwnBookings     Operation = "bookings:list-own"
	CreateBooking       Operation = "bookings:create"
	UpdateBookingStatus Operation = "bookings:update-status"
	DeleteBooking       Operation = "bookings:delete"
	CreatePost          Operation = "posts:create"
	DeletePost          Operation = "posts:delete"
	ListHosts           Operation = "hosts:list"
	AdminUsers          Operation = "admin:users"
	AdminBookings       Operation = "admin:bookings"
	AdminRevenue        Operation = "admin:revenue"
)

var (
	anyRole   = entity.Roles()
	adminOnly = []entity.Role{entity.RoleAdmin}
)

// rule lists the roles allowed to attempt an operation. denied, when set,
// replaces the generic 403 message.
type rule struct {
	roles  []entity.Role
	denied string
}

// table maps each operation to the roles allowed to attempt it. Ownership
// is checked separately by the Can* helpers below.
var table = map[Operation]rule{
	ListAllBookings:     {roles: adminOnly},
	ListOwnBookings:     {roles: []entity.Role{entity.RoleTraveler, entity.RoleHost}},
	CreateBooking:       {roles: anyRole},
	UpdateBookingStatus: {roles: []entity.Role{entity.RoleAdmin, entity.RoleHost}},
	DeleteBooking:       {roles: anyRole},
	CreatePost:          {roles: []entity.Role{entity.RoleHost, entity.RoleAdmin}, denied: "Only hosts and admins can create posts"},
	DeletePost:          {roles: anyRole},
	ListHosts:           {roles: anyRole},
	AdminUsers:          {roles: adminOnly},
	AdminBookings:       {roles: adminOnly},
	AdminRevenue:        {roles: adminOnly},
}

// Authorize allows the call when caller holds one of roles. An anonymous
// caller yields ErrUnauthenticated, a wrong role yields ErrForbidden.
func Authorize(caller *Caller, roles ...entity.Role) error {
	if caller == nil {
		return apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	}
	if !slices.Contains(roles, caller.Role) {
		return apperror.Forbidden("Insufficient permissions")
	}
	return nil
}

// Can authorizes op using the role table.
func Can(caller *Caller, op Operation) error {
	r := table[op]
	err := Authorize(caller, r.roles...)
	if r.denied != "" && errors.Is(err, apperror.ErrForbidden) {
		return apperror.Forbidden(r.denied)
	}
	return err
}

// CanViewBooking: admin, the traveler who booked, or the booked host.
func CanViewBooking(caller *Caller, b *entity.Booking) error {
	if err := Authorize(caller, anyRole...); err != nil {
		return err
	}
	if caller.Role == entity.RoleAdmin || b.UserID == caller.ID || b.HostID == caller.ID {
		return nil
	}
	return apperror.Forbidden("Not authorized to view this booking")
}

// CanUpdateBookingStatus: admin, or the host the booking was made against.
func CanUpdateBookingStatus(caller *Caller, b *entity.Booking) error {
	if err := Can(caller, UpdateBookingStatus); err != nil {
		return err
	}
	if caller.Role == entity.RoleHost && b.HostID != caller.ID {
		return apperror.Forbidden("Not authorized to update this booking")
	}
	return nil
}

// CanDeleteBooking: admin, the owner, or the booked host.
func CanDeleteBooking(caller *Caller, b *entity.Booking) error {
	if err := Can(caller, DeleteBooking); err != nil {
		return err
	}
	switch {
	case caller.Role == entity.RoleAdmin:
		return nil
	case b.UserID == caller.ID:
		return nil
	case caller.Role == entity.RoleHost && b.HostID == caller.ID:
		return nil
	}
	return apperror.Forbidden("Not authorized to delete this booking")
}

// CanModifyPost covers edits and cover uploads: admin or the author.
func CanModifyPost(caller *Caller, p *entity.Post) error {
	if err := Authorize(caller, anyRole...); err != nil {
		return err
	}
	if caller.Role != entity.RoleAdmin && p.UserID != caller.ID {
		return apperror.Forbidden("Not authorized to modify this post")
	}
	return nil
}

// CanDeletePost: admin deletes any post, everyone else only their own.
func CanDeletePost(caller *Caller, p *entity.Post) error {
	if err := Can(caller, DeletePost); err != nil {
		return err
	}
	if caller.Role != entity.RoleAdmin && p.UserID != caller.ID {
		return apperror.Forbidden("Not authorized to delete this post")
	}
	return nil
}
