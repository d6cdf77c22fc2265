package post

import (
	"context"
)

type Repository interface {
	FindOne(ctx context.Context, options *FindOneOptions) (*Post, error)
	FindAll(ctx context.Context, options *FindOptions) ([]*Post, error)
	Create(ctx context.Context, post *Post) (*Post, error)
}
