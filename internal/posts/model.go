package posts

import (
	"time"

	"github.com/lib/pq"
)

// Post is immutable once written. Nome and FotoPerfil are snapshots of the
// author's display name and profile image at post time.
type Post struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"index" json:"userId"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Sports      pq.StringArray `gorm:"type:text[]" json:"sports"`
	Nome        string         `json:"nome,omitempty"`
	FotoPerfil  string         `json:"fotoPerfil,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}
