package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, user_id, title, content, category, status, cover_url, created_at`

func scanPost(row pgx.Row) (*entity.Post, error) {
	var (
		p      entity.Post
		status string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Category, &status, &p.CoverURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	st, err := entity.ParsePostStatus(status)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", p.ID, err)
	}
	p.Status = st
	return &p, nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, title, content, category, status, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.UserID, p.Title, p.Content, p.Category, string(p.Status), p.CoverURL)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(err, "Post not found")
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context, f repository.PostFilter) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE ($1::bigint = 0 OR user_id = $1)
		ORDER BY id
	`, f.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET title = $1, content = $2, category = $3, status = $4, cover_url = $5
		WHERE id = $6
		RETURNING user_id, created_at
	`, p.Title, p.Content, p.Category, string(p.Status), p.CoverURL, p.ID)
	return mapErr(row.Scan(&p.UserID, &p.CreatedAt), "Post not found")
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperror.NotFound("Post not found")
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
