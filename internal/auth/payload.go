package auth

import "github.com/gustavorods/2025-flink-startup-backend/internal/user"

type RegisterRequest struct {
	Nome         string           `json:"nome"`
	Sobrenome    string           `json:"sobrenome"`
	Email        string           `json:"email"`
	Password     string           `json:"password"`
	Username     string           `json:"username"`
	Esportes     []string         `json:"esportes"`
	RedesSociais user.SocialLinks `json:"redes_sociais"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
