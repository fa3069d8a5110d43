package user

import (
	"time"

	"github.com/lib/pq"
)

type SocialLinks struct {
	TikTok    string `json:"tiktok,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	X         string `json:"x,omitempty"`
}

// User is the identity record. PasswordHash never crosses the wire and is
// omitted from every read query except the login lookup.
type User struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	Nome            string         `json:"nome"`
	Sobrenome       string         `json:"sobrenome"`
	Email           string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash    string         `json:"-"`
	Username        string         `gorm:"uniqueIndex" json:"username"`
	Esportes        pq.StringArray `gorm:"type:text[]" json:"esportes"`
	RedesSociais    SocialLinks    `gorm:"serializer:json" json:"redes_sociais"`
	ProfileImageURL string         `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
