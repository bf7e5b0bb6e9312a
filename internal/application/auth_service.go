package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
	"github.com/oksasatya/travel-booking/internal/infrastructure/session"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

var errInvalidCredentials = apperror.New(apperror.ErrUnauthenticated, "Invalid email or password")

// AuthService owns accounts and login sessions.
type AuthService struct {
	users    repository.UserRepository
	sessions session.Store
	tokens   *helpers.SessionTokens
	notifier Notifier
	logger   *logrus.Logger
}

func NewAuthService(users repository.UserRepository, sessions session.Store, tokens *helpers.SessionTokens, notifier Notifier, logger *logrus.Logger) *AuthService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &AuthService{users: users, sessions: sessions, tokens: tokens, notifier: notifier, logger: logger}
}

// Login is the token to put in the session cookie.
type Login struct {
	Token     string
	ExpiresAt time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates the account and logs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, *Login, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, nil, apperror.Validation("All fields are required")
	}
	role, err := entity.ParseRole(strings.TrimSpace(in.Role))
	if err != nil {
		return nil, nil, apperror.Validation("Invalid role")
	}

	switch _, err := s.users.GetByEmail(ctx, email); {
	case err == nil:
		return nil, nil, apperror.New(apperror.ErrDuplicate, "Email already exists")
	case !errors.Is(err, apperror.ErrNotFound):
		return nil, nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}
	u := &entity.User{Name: name, Email: email, Password: hash, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, nil, err
	}
	registrationsTotal.Add(1)
	s.logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	s.notifier.UserRegistered(ctx, *u)

	login, err := s.startSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, login, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *Login, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, nil, errInvalidCredentials
	}
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, nil, errInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, nil, errInvalidCredentials
	}
	login, err := s.startSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	loginsTotal.Add(1)
	return u, login, nil
}

func (s *AuthService) startSession(ctx context.Context, u *entity.User) (*Login, error) {
	sess, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	tok, exp, err := s.tokens.Issue(sess.ID, u.ID)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	return &Login{Token: tok, ExpiresAt: exp}, nil
}

// Logout destroys the session named by token. Unknown or invalid tokens are
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// Authenticate resolves a session token to its user. The user is re-read on
// every call so deleted accounts lose access immediately.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	unauth := apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, unauth
	}
	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, unauth
	}
	if err != nil {
		return nil, err
	}
	if uid, err := claims.UserID(); err != nil || uid != sess.UserID {
		return nil, unauth
	}
	u, err := s.users.GetByID(ctx, sess.UserID)
	if errors.Is(err, apperror.ErrNotFound) {
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, unauth
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdateProfile edits the caller's own account. Role changes are not possible here.
func (s *AuthService) UpdateProfile(ctx context.Context, caller *policy.Caller, in UpdateProfileInput) (*entity.User, error) {
	if err := policy.Authorize(caller, entity.Roles()...); err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperror.Validation("Name cannot be empty")
		}
		u.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, apperror.Validation("Email cannot be empty")
		}
		u.Email = email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, apperror.Validation("Password cannot be empty")
		}
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
