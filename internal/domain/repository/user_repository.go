package repository

import (
	"context"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

// UserFilter narrows List results. Zero values match everything.
type UserFilter struct {
	Role entity.Role
}

// UserRepository defines the interface for user persistence.
// Create assigns ID and CreatedAt and fails with apperror.ErrDuplicate when
// the e-mail is taken; lookups of unknown users fail with apperror.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, f UserFilter) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}
