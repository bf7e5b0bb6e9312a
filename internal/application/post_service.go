package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/internal/domain/repository"
)

// PostIndex mirrors posts into a full-text index.
type PostIndex interface {
	Index(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, size int) ([]int64, error)
}

// Uploader stores a blob and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

const searchLimit = 20

type PostService struct {
	posts    repository.PostRepository
	index    PostIndex
	uploader Uploader
	logger   *logrus.Logger
}

// NewPostService builds the service; index and uploader may be nil.
func NewPostService(posts repository.PostRepository, index PostIndex, uploader Uploader, logger *logrus.Logger) *PostService {
	return &PostService{posts: posts, index: index, uploader: uploader, logger: logger}
}

func (s *PostService) List(ctx context.Context, f repository.PostFilter) ([]entity.Post, error) {
	return s.posts.List(ctx, f)
}

type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Status   string
}

func (s *PostService) Create(ctx context.Context, caller *policy.Caller, in CreatePostInput) (*entity.Post, error) {
	if err := policy.Can(caller, policy.CreatePost); err != nil {
		return nil, err
	}
	p := &entity.Post{
		UserID:   caller.ID,
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		Category: strings.TrimSpace(in.Category),
	}
	st, err := entity.ParsePostStatus(strings.TrimSpace(in.Status))
	if err != nil {
		return nil, apperror.Validation("Invalid post status")
	}
	p.Status = st
	if err := validatePost(p); err != nil {
		return nil, err
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	postsCreatedTotal.Add(1)
	s.reindex(ctx, p)
	return p, nil
}

func validatePost(p *entity.Post) error {
	switch {
	case p.Title == "":
		return apperror.Validation("Title is required")
	case p.Content == "":
		return apperror.Validation("Content is required")
	case p.Category == "":
		return apperror.Validation("Category is required")
	}
	return nil
}

type UpdatePostInput struct {
	Title    *string
	Content  *string
	Category *string
	Status   *string
}

func (s *PostService) Update(ctx context.Context, caller *policy.Caller, id int64, in UpdatePostInput) (*entity.Post, error) {
	if err := policy.Authorize(caller, entity.Roles()...); err != nil {
		return nil, err
	}
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanModifyPost(caller, p); err != nil {
		return nil, err
	}
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		p.Content = strings.TrimSpace(*in.Content)
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Status != nil {
		st, err := entity.ParsePostStatus(strings.TrimSpace(*in.Status))
		if err != nil {
			return nil, apperror.Validation("Invalid post status")
		}
		p.Status = st
	}
	if err := validatePost(p); err != nil {
		return nil, err
	}
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	s.reindex(ctx, p)
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, caller *policy.Caller, id int64) error {
	if err := policy.Can(caller, policy.DeletePost); err != nil {
		return err
	}
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanDeletePost(caller, p); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	if s.index != nil {
		if err := s.index.Delete(ctx, id); err != nil {
			s.logger.WithError(err).WithField("post_id", id).Warn("search index delete failed")
		}
	}
	return nil
}

// Search looks posts up in the index, or by case-insensitive substring over
// title, content and category when no index is configured or it fails.
func (s *PostService) Search(ctx context.Context, q string) ([]entity.Post, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.posts.List(ctx, repository.PostFilter{})
	}
	if s.index != nil {
		out, err := s.searchIndex(ctx, q)
		if err == nil {
			return out, nil
		}
		s.logger.WithError(err).Warn("search index query failed, falling back to scan")
	}
	all, err := s.posts.List(ctx, repository.PostFilter{})
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(q)
	out := make([]entity.Post, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PostService) searchIndex(ctx context.Context, q string) ([]entity.Post, error) {
	ids, err := s.index.Search(ctx, q, searchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Post, 0, len(ids))
	for _, id := range ids {
		p, err := s.posts.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrNotFound) {
			// index lags behind deletes
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// UploadCover stores an image and sets it as the post's cover.
func (s *PostService) UploadCover(ctx context.Context, caller *policy.Caller, id int64, filename, contentType string, r io.Reader) (*entity.Post, error) {
	if err := policy.Authorize(caller, entity.Roles()...); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, apperror.New(apperror.ErrUnavailable, "Uploads are not configured")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.Validation("Cover must be an image")
	}
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanModifyPost(caller, p); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	object := fmt.Sprintf("posts/%d/%s%s", p.ID, uuid.NewString(), ext)
	url, err := s.uploader.Upload(ctx, object, contentType, r)
	if err != nil {
		return nil, err
	}
	p.CoverURL = url
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) reindex(ctx context.Context, p *entity.Post) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, p); err != nil {
		s.logger.WithError(err).WithField("post_id", p.ID).Warn("search index update failed")
	}
}
