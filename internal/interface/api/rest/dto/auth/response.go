package auth

import "servija-api/internal/interface/api/rest/dto/user"

type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        user.User `json:"user"`
}
