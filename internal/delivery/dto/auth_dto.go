package dto

import "github.com/google/uuid"

// Request DTOs

type RegisterRequest struct {
	Username string                 `json:"username" validate:"required,min=3"`
	Password string                 `json:"password" validate:"required,min=6"`
	FullName string                 `json:"full_name" validate:"required,min=2"`
	Profile  map[string]interface{} `json:"profile" validate:"omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID       uuid.UUID              `json:"id"`
	Username string                 `json:"username"`
	FullName string                 `json:"full_name"`
	Profile  map[string]interface{} `json:"profile,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
