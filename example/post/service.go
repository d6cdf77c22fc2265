package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	FindPost(ctx context.Context, options *FindOneOptions) (*Post, error)
	FindPosts(ctx context.Context, options *FindOptions) ([]*Post, error)
	CreatePost(ctx context.Context, options *CreateOptions) (*Post, error)
}

type service struct {
	postRepository Repository
}

func NewService(postRepository Repository) Service {
	return &service{
		postRepository: postRepository,
	}
}

func (s *service) FindPost(ctx context.Context, options *FindOneOptions) (*Post, error) {
	return s.postRepository.FindOne(ctx, options)
}

func (s *service) FindPosts(ctx context.Context, options *FindOptions) ([]*Post, error) {
	return s.postRepository.FindAll(ctx, options)
}

func (s *service) CreatePost(ctx context.Context, options *CreateOptions) (*Post, error) {
	post, err := processCreatePost(options)
	if err != nil {
		return nil, err
	}
	return s.postRepository.Create(ctx, post)
}

func processCreatePost(options *CreateOptions) (*Post, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}

	authorId := strings.TrimSpace(options.AuthorId)
	if authorId == "" {
		return nil, ErrAuthorIdRequired
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	return &Post{
		Id:        uuid.NewString(),
		AuthorId:  authorId,
		Title:     title,
		Content:   options.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
