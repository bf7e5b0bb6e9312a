package repository

import (
	"context"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
)

type PostFilter struct {
	UserID int64
}

type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context, f PostFilter) ([]entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
