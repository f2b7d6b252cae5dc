package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrNotOwner           = errors.New("photo does not belong to requester")
	ErrAlreadyLiked       = errors.New("photo already liked")
)
