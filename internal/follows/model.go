package follows

import "time"

// The follow edge is stored twice, once per lookup direction, the same way
// the document layout keeps a "seguindo" and a "seguidores" set per user.

// Following lives under the follower: user_id follows followee_id.
type Following struct {
	UserID     string `gorm:"primaryKey"`
	FolloweeID string `gorm:"primaryKey"`
	CreatedAt  time.Time
}

// Follower is the mirror under the followee: user_id is followed by follower_id.
type Follower struct {
	UserID     string `gorm:"primaryKey"`
	FollowerID string `gorm:"primaryKey"`
	CreatedAt  time.Time
}
