package migrate

import (
	"log"

	"gorm.io/gorm"

	"github.com/gustavorods/2025-flink-startup-backend/internal/follows"
	"github.com/gustavorods/2025-flink-startup-backend/internal/posts"
	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

func Run(db *gorm.DB) {
	err := db.AutoMigrate(
		&user.User{},
		&follows.Following{},
		&follows.Follower{},
		&posts.Post{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
}
