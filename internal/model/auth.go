package model

import "github.com/golang-jwt/jwt/v5"

// TenantClaims is the JWT payload for an authenticated tenant admin
type TenantClaims struct {
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token    string `json:"token"`
	TenantID string `json:"tenantId"`
}
