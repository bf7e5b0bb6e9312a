package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	n := &recordingNotifier{}
	svc := newAuthService(t, store, n)

	u, login, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTraveler, u.Role)
	assert.NotEqual(t, "pw123", u.Password)
	require.NotEmpty(t, login.Token)
	assert.Len(t, n.registered, 1)

	me, err := svc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)

	_, _, err = svc.Login(ctx, "asha@x.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Equal(t, "Invalid email or password", apperror.Message(err))

	_, _, err = svc.Login(ctx, "nobody@x.com", "pw123")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	_, second, err := svc.Login(ctx, "asha@x.com", "pw123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, second.Token))
	_, err = svc.Authenticate(ctx, second.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	// the first session is independent of the second
	_, err = svc.Authenticate(ctx, login.Token)
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := newAuthService(t, store, nil)

	cases := map[string]struct {
		in   RegisterInput
		kind error
		msg  string
	}{
		"missing name": {RegisterInput{Email: "a@x.com", Password: "p"}, apperror.ErrValidation, "All fields are required"},
		"blank email":  {RegisterInput{Name: "A", Email: "  ", Password: "p"}, apperror.ErrValidation, "All fields are required"},
		"unknown role": {RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: "root"}, apperror.ErrValidation, "Invalid role"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tc.in)
			assert.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.msg, apperror.Message(err))
		})
	}

	_, _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "p", Role: "host"})
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "a@x.com", Password: "q"})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
	assert.Equal(t, "Email already exists", apperror.Message(err))

	all, err := store.Users().List(ctx, repository.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAuthenticateRejectsDeletedUser(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := newAuthService(t, store, nil)

	u, login, err := svc.Register(ctx, RegisterInput{Name: "Gone", Email: "gone@x.com", Password: "p"})
	require.NoError(t, err)
	require.NoError(t, store.Users().Delete(ctx, u.ID))

	_, err = svc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	_, err = svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	svc := newAuthService(t, store, nil)

	u, _, err := svc.Register(ctx, RegisterInput{Name: "Old", Email: "me@x.com", Password: "p"})
	require.NoError(t, err)
	caller := policy.CallerOf(u)

	name, pw := "New Name", "fresh-pass"
	got, err := svc.UpdateProfile(ctx, caller, UpdateProfileInput{Name: &name, Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, entity.RoleTraveler, got.Role)

	_, _, err = svc.Login(ctx, "me@x.com", "fresh-pass")
	assert.NoError(t, err)

	blank := " "
	_, err = svc.UpdateProfile(ctx, caller, UpdateProfileInput{Name: &blank})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.UpdateProfile(ctx, nil, UpdateProfileInput{Name: &name})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}
