package models

import "time"

// User represents a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID           int64  `json:"id"`
	ProfileImage string `json:"profileImage,omitempty"`
	Token        string `json:"token"`
}

// ProfileUpdate carries the optional fields of a self-service profile edit.
// Nil means "leave unchanged"; ProfileImage is the stored filename of an
// uploaded file, set by the handler when a file was attached.
type ProfileUpdate struct {
	Name         *string
	Password     *string
	Bio          *string
	ProfileImage *string
}
