package user

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

type Service interface {
	FindUser(ctx context.Context, options *FindOneOptions) (*User, error)
	FindUsers(ctx context.Context, options *FindOptions) ([]*User, error)
	CreateUser(ctx context.Context, options *CreateOptions) (*User, error)
}

type service struct {
	userRepository Repository
}

func NewService(userRepository Repository) Service {
	return &service{
		userRepository: userRepository,
	}
}

func (s *service) FindUser(ctx context.Context, options *FindOneOptions) (*User, error) {
	return s.userRepository.FindOne(ctx, options)
}

func (s *service) FindUsers(ctx context.Context, options *FindOptions) ([]*User, error) {
	return s.userRepository.FindAll(ctx, options)
}

func (s *service) CreateUser(ctx context.Context, options *CreateOptions) (*User, error) {
	user, err := processCreateUser(options)
	if err != nil {
		return nil, err
	}
	return s.userRepository.Create(ctx, user)
}

func processCreateUser(options *CreateOptions) (*User, error) {
	if options == nil {
		return nil, ErrCreateOptionsRequired
	}

	name := strings.TrimSpace(options.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	email := strings.TrimSpace(options.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}

	now := time.Now()
	return &User{
		Id:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
