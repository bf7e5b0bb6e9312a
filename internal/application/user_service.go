package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

// UserService is the user directory: host lookup and admin account management.
type UserService struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Hosts(ctx context.Context, caller *policy.Caller) ([]entity.User, error) {
	if err := policy.Can(caller, policy.ListHosts); err != nil {
		return nil, err
	}
	return s.users.List(ctx, repository.UserFilter{Role: entity.RoleHost})
}

func (s *UserService) List(ctx context.Context, caller *policy.Caller) ([]entity.User, error) {
	if err := policy.Can(caller, policy.AdminUsers); err != nil {
		return nil, err
	}
	return s.users.List(ctx, repository.UserFilter{})
}

// Delete removes an account. Bookings and posts of the user are kept.
func (s *UserService) Delete(ctx context.Context, caller *policy.Caller, id int64) error {
	if err := policy.Can(caller, policy.AdminUsers); err != nil {
		return err
	}
	if id == caller.ID {
		return apperror.Validation("You cannot delete your own account")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"user_id": id, "by": caller.ID}).Info("user deleted")
	return nil
}
