package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by a profile session token
type SessionClaims struct {
	jwt.RegisteredClaims
	ProfileID string `json:"profile_id"`
	TokenType string `json:"token_type"`
}
