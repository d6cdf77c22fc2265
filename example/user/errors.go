package user

import (
	"errors"
)

var (
	ErrNameRequired          = errors.New("name is required")
	ErrEmailRequired         = errors.New("email is required")
	ErrEmailInvalid          = errors.New("email is invalid")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserIdAlreadyExists   = errors.New("user id already exists")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
