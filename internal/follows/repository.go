package follows

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	CreateEdge(ctx context.Context, followerID, followeeID string, at time.Time) error
	ListFollowees(ctx context.Context, userID string) ([]string, error)
	ListFollowers(ctx context.Context, userID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateEdge writes both mirrors in one transaction: the graph never holds a
// half-written edge. A repeated follow is a no-op on both sides.
func (r *repository) CreateEdge(ctx context.Context, followerID, followeeID string, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fwd := Following{UserID: followerID, FolloweeID: followeeID, CreatedAt: at}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fwd).Error; err != nil {
			return err
		}
		rev := Follower{UserID: followeeID, FollowerID: followerID, CreatedAt: at}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rev).Error
	})
}

// ListFollowees reads the follower-side mirror. An unknown user simply has no
// rows, which comes back as an empty set rather than an error.
func (r *repository) ListFollowees(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&Following{}).
		Where("user_id = ?", userID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) ListFollowers(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&Follower{}).
		Where("user_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
