package entity

import (
	"fmt"
	"time"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostPublished, PostArchived:
		return true
	default:
		return false
	}
}

// ParsePostStatus defaults an empty value to published.
func ParsePostStatus(s string) (PostStatus, error) {
	if s == "" {
		return PostPublished, nil
	}
	st := PostStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown post status %q", s)
	}
	return st, nil
}

// Post is a travel article written by a host or admin.
type Post struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Status    PostStatus `json:"status"`
	CoverURL  string     `json:"coverUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
