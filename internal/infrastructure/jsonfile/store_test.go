package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func TestOpenCreatesEmptyCollections(t *testing.T) {
	s := openStore(t)
	for _, name := range []string{usersFile, bookingsFile, postsFile, packagesFile} {
		b, err := os.ReadFile(filepath.Join(s.Dir(), name))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	}
}

func TestOpenKeepsExistingData(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, usersFile),
		[]byte(`[{"id":7,"name":"Old","email":"old@x.com","password":"h","role":"host"}]`), 0o644))

	s, err := Open(dir)
	require.NoError(t, err)
	u, err := s.Users().GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHost, u.Role)
}

func TestMalformedFileIsAnError(t *testing.T) {
	s := openStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), bookingsFile), []byte("{not json"), 0o644))

	_, err := s.Bookings().List(context.Background(), repository.BookingFilter{})
	assert.Error(t, err)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	users := openStore(t).Users()

	a := &entity.User{Name: "Alice", Email: "alice@x.com", Password: "h", Role: entity.RoleTraveler}
	require.NoError(t, users.Create(ctx, a))
	assert.Equal(t, int64(1), a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	dup := &entity.User{Name: "A2", Email: "ALICE@x.com", Password: "h", Role: entity.RoleTraveler}
	assert.ErrorIs(t, users.Create(ctx, dup), apperror.ErrDuplicate)

	h := &entity.User{Name: "Hank", Email: "hank@x.com", Password: "h", Role: entity.RoleHost}
	require.NoError(t, users.Create(ctx, h))
	assert.Equal(t, int64(2), h.ID)

	got, err := users.GetByEmail(ctx, "hank@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h", got.Password)

	hosts, err := users.List(ctx, repository.UserFilter{Role: entity.RoleHost})
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "Hank", hosts[0].Name)

	h.Email = "alice@x.com"
	assert.ErrorIs(t, users.Update(ctx, h), apperror.ErrDuplicate)

	require.NoError(t, users.Delete(ctx, a.ID))
	_, err = users.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, users.Delete(ctx, a.ID), apperror.ErrNotFound)

	// ids continue from the highest stored id
	c := &entity.User{Name: "Cara", Email: "cara@x.com", Password: "h", Role: entity.RoleTraveler}
	require.NoError(t, users.Create(ctx, c))
	assert.Equal(t, int64(3), c.ID)
}

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	bookings := openStore(t).Bookings()

	notes := "sea view"
	b := &entity.Booking{UserID: 1, HostID: 2, Title: "Goa Trip", StartDate: "2025-01-10", EndDate: "2025-01-15",
		Guests: "2", Price: "500", Notes: &notes, Status: entity.BookingPending}
	require.NoError(t, bookings.Create(ctx, b))
	require.NoError(t, bookings.Create(ctx, &entity.Booking{UserID: 3, HostID: 4, Title: "Other", Status: entity.BookingConfirmed}))

	mine, err := bookings.List(ctx, repository.BookingFilter{UserID: 1})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "sea view", *mine[0].Notes)

	hosted, err := bookings.List(ctx, repository.BookingFilter{HostID: 4})
	require.NoError(t, err)
	require.Len(t, hosted, 1)

	updated, err := bookings.UpdateStatus(ctx, b.ID, entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, updated.Status)
	assert.Equal(t, "Goa Trip", updated.Title)

	_, err = bookings.UpdateStatus(ctx, 99, entity.BookingCancelled)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, bookings.Delete(ctx, b.ID))
	all, err := bookings.List(ctx, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostUpdateKeepsAuthor(t *testing.T) {
	ctx := context.Background()
	posts := openStore(t).Posts()

	p := &entity.Post{UserID: 5, Title: "Beaches", Content: "sand", Category: "guide", Status: entity.PostPublished}
	require.NoError(t, posts.Create(ctx, p))

	edit := &entity.Post{ID: p.ID, UserID: 9, Title: "Best Beaches", Content: "sand", Category: "guide", Status: entity.PostDraft}
	require.NoError(t, posts.Update(ctx, edit))

	got, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.UserID)
	assert.Equal(t, "Best Beaches", got.Title)
	assert.Equal(t, entity.PostDraft, got.Status)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	bookings := openStore(t).Bookings()

	const n = 40
	var (
		mu  sync.Mutex
		ids = make(map[int64]struct{}, n)
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			b := &entity.Booking{UserID: 1, HostID: 1, Title: "t", Status: entity.BookingPending}
			if err := bookings.Create(gctx, b); err != nil {
				return err
			}
			mu.Lock()
			ids[b.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, ids, n)

	all, err := bookings.List(ctx, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, n)
}

func TestPackagesAndDestinations(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.Packages().Create(ctx, &entity.Package{DestinationID: "goa", Name: "Goa Getaway", Price: "499"}))
	require.NoError(t, s.Packages().Create(ctx, &entity.Package{DestinationID: "bali", Name: "Bali Escape", Price: "899"}))

	goa, err := s.Packages().List(ctx, repository.PackageFilter{DestinationID: "goa"})
	require.NoError(t, err)
	require.Len(t, goa, 1)
	assert.Equal(t, "Goa Getaway", goa[0].Name)

	missing := NewDestinationCatalog(filepath.Join(s.Dir(), "nope.json"))
	list, err := missing.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	path := filepath.Join(s.Dir(), "destinations.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"goa","name":"Goa","description":"beaches"}]`), 0o644))
	cat := NewDestinationCatalog(path)
	d, err := cat.GetByID(ctx, "goa")
	require.NoError(t, err)
	assert.Equal(t, "Goa", d.Name)
	_, err = cat.GetByID(ctx, "paris")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, os.WriteFile(path, []byte(`oops`), 0o644))
	_, err = cat.List(ctx)
	assert.Error(t, err)
}
