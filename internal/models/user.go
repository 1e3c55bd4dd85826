package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the snapshot of an authenticated user used to build order submissions.
type Identity struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

func (i *Identity) Valid() bool {
	return i != nil && i.UserID != uuid.Nil
}

// DisplayName falls back to "User" like the storefront does.
func (i *Identity) DisplayName() string {
	if i == nil || i.Username == "" {
		return "User"
	}

	return i.Username
}

// JWT claims issued by the identity backend
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" validate:"required,url"`
}
