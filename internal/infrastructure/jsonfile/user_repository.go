package jsonfile

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type userRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r userRecord) key() int64 { return r.ID }

func (r userRecord) toEntity() (entity.User, error) {
	role, err := entity.ParseRole(r.Role)
	if err != nil {
		return entity.User{}, fmt.Errorf("user %d: %w", r.ID, err)
	}
	return entity.User{ID: r.ID, Name: r.Name, Email: r.Email, Password: r.Password, Role: role, CreatedAt: r.CreatedAt}, nil
}

func userRecordOf(u *entity.User) userRecord {
	return userRecord{ID: u.ID, Name: u.Name, Email: u.Email, Password: u.Password, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

type UserRepository struct {
	c *collection[userRecord]
}

func sameEmail(a, b string) bool { return strings.EqualFold(a, b) }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	return r.c.mutate(func(items []userRecord) ([]userRecord, error) {
		for _, it := range items {
			if sameEmail(it.Email, u.Email) {
				return nil, apperror.New(apperror.ErrDuplicate, "Email already exists")
			}
		}
		u.ID = nextID(items)
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now().UTC()
		}
		return append(items, userRecordOf(u)), nil
	})
}

func (r *UserRepository) find(match func(userRecord) bool) (*entity.User, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if match(it) {
			u, err := it.toEntity()
			if err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, apperror.NotFound("User not found")
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return r.find(func(it userRecord) bool { return it.ID == id })
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(it userRecord) bool { return sameEmail(it.Email, email) })
}

func (r *UserRepository) List(_ context.Context, f repository.UserFilter) ([]entity.User, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(items))
	for _, it := range items {
		if f.Role != "" && it.Role != string(f.Role) {
			continue
		}
		u, err := it.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	return r.c.mutate(func(items []userRecord) ([]userRecord, error) {
		idx := slices.IndexFunc(items, func(it userRecord) bool { return it.ID == u.ID })
		if idx < 0 {
			return nil, apperror.NotFound("User not found")
		}
		for _, it := range items {
			if it.ID != u.ID && sameEmail(it.Email, u.Email) {
				return nil, apperror.New(apperror.ErrDuplicate, "Email already exists")
			}
		}
		u.CreatedAt = items[idx].CreatedAt
		items[idx] = userRecordOf(u)
		return items, nil
	})
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	return r.c.mutate(func(items []userRecord) ([]userRecord, error) {
		idx := slices.IndexFunc(items, func(it userRecord) bool { return it.ID == id })
		if idx < 0 {
			return nil, apperror.NotFound("User not found")
		}
		return slices.Delete(items, idx, idx+1), nil
	})
}

var _ repository.UserRepository = (*UserRepository)(nil)
