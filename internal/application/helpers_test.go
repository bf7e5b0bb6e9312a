package application

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/internal/infrastructure/jsonfile"
	"github.com/oksasatya/travel-booking/internal/infrastructure/session"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func openStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	s, err := jsonfile.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

// recordingNotifier keeps every event it receives.
type recordingNotifier struct {
	mu         sync.Mutex
	registered []entity.User
	created    []entity.Booking
	changed    []entity.Booking
}

func (n *recordingNotifier) UserRegistered(_ context.Context, u entity.User) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.registered = append(n.registered, u)
}

func (n *recordingNotifier) BookingCreated(_ context.Context, b entity.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, b)
}

func (n *recordingNotifier) BookingStatusChanged(_ context.Context, b entity.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, b)
}

func newAuthService(t *testing.T, store *jsonfile.Store, n Notifier) *AuthService {
	t.Helper()
	return NewAuthService(store.Users(), session.NewMemoryStore(time.Hour),
		helpers.NewSessionTokens("test-secret", time.Hour), n, quietLogger())
}

func seedUser(t *testing.T, store *jsonfile.Store, name string, role entity.Role) *policy.Caller {
	t.Helper()
	u := &entity.User{Name: name, Email: name + "@example.com", Password: "x", Role: role}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return policy.CallerOf(u)
}
