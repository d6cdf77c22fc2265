package post

import (
	"time"
)

type Post struct {
	Id        string
	AuthorId  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
