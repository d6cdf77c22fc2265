package post

import (
	"errors"
)

var (
	ErrAuthorIdRequired      = errors.New("author id is required")
	ErrTitleRequired         = errors.New("title is required")
	ErrPostNotFound          = errors.New("post not found")
	ErrPostIdAlreadyExists   = errors.New("post id already exists")
	ErrCreateOptionsRequired = errors.New("create options are required")
)
