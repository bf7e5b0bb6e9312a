package jsonfile

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type postRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r postRecord) key() int64 { return r.ID }

func (r postRecord) toEntity() (entity.Post, error) {
	st, err := entity.ParsePostStatus(r.Status)
	if err != nil {
		return entity.Post{}, fmt.Errorf("post %d: %w", r.ID, err)
	}
	return entity.Post{
		ID: r.ID, UserID: r.UserID, Title: r.Title, Content: r.Content,
		Category: r.Category, Status: st, CoverURL: r.CoverURL, CreatedAt: r.CreatedAt,
	}, nil
}

func postRecordOf(p *entity.Post) postRecord {
	return postRecord{
		ID: p.ID, UserID: p.UserID, Title: p.Title, Content: p.Content,
		Category: p.Category, Status: string(p.Status), CoverURL: p.CoverURL, CreatedAt: p.CreatedAt,
	}
}

type PostRepository struct {
	c *collection[postRecord]
}

func (r *PostRepository) Create(_ context.Context, p *entity.Post) error {
	return r.c.mutate(func(items []postRecord) ([]postRecord, error) {
		p.ID = nextID(items)
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		return append(items, postRecordOf(p)), nil
	})
}

func (r *PostRepository) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			p, err := it.toEntity()
			if err != nil {
				return nil, err
			}
			return &p, nil
		}
	}
	return nil, apperror.NotFound("Post not found")
}

func (r *PostRepository) List(_ context.Context, f repository.PostFilter) ([]entity.Post, error) {
	items, err := r.c.read()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Post, 0, len(items))
	for _, it := range items {
		if f.UserID != 0 && it.UserID != f.UserID {
			continue
		}
		p, err := it.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostRepository) Update(_ context.Context, p *entity.Post) error {
	return r.c.mutate(func(items []postRecord) ([]postRecord, error) {
		idx := slices.IndexFunc(items, func(it postRecord) bool { return it.ID == p.ID })
		if idx < 0 {
			return nil, apperror.NotFound("Post not found")
		}
		// ownership and creation time are immutable
		p.UserID = items[idx].UserID
		p.CreatedAt = items[idx].CreatedAt
		items[idx] = postRecordOf(p)
		return items, nil
	})
}

func (r *PostRepository) Delete(_ context.Context, id int64) error {
	return r.c.mutate(func(items []postRecord) ([]postRecord, error) {
		idx := slices.IndexFunc(items, func(it postRecord) bool { return it.ID == id })
		if idx < 0 {
			return nil, apperror.NotFound("Post not found")
		}
		return slices.Delete(items, idx, idx+1), nil
	})
}

var _ repository.PostRepository = (*PostRepository)(nil)
