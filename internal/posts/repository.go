package posts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MaxAuthorsPerQuery is the store contract carried over from the document
// database: a "value in set" query accepts at most 10 members. Callers fanning
// out over larger author sets must chunk (see internal/feed).
const MaxAuthorsPerQuery = 10

var ErrNotFound = errors.New("post not found")

type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	// ListByAuthors returns posts whose author is in authorIDs, newest first,
	// at most limit rows. len(authorIDs) must not exceed MaxAuthorsPerQuery.
	ListByAuthors(ctx context.Context, authorIDs []string, limit int) ([]Post, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByAuthors(ctx context.Context, authorIDs []string, limit int) ([]Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	if len(authorIDs) > MaxAuthorsPerQuery {
		return nil, fmt.Errorf("author set of %d exceeds the %d-member query cap", len(authorIDs), MaxAuthorsPerQuery)
	}
	var result []Post
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
