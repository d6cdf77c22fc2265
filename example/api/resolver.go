package api

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/UnAfraid/dataloader/example/post"
	"github.com/UnAfraid/dataloader/example/user"
	"github.com/UnAfraid/dataloader/internal/adapt"
)

type Resolver struct {
	userService user.Service
	postService post.Service
}

func NewResolver(userService user.Service, postService post.Service) *Resolver {
	return &Resolver{
		userService: userService,
		postService: postService,
	}
}

func (r *Resolver) User(ctx context.Context, args struct{ Id graphql.ID }) (*userResolver, error) {
	userLoader, err := UserLoaderFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := userLoader.Load(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &userResolver{root: r, user: u}, nil
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.userService.FindUsers(ctx, &user.FindOptions{})
	if err != nil {
		return nil, err
	}
	return adapt.Array(users, r.toUserResolver), nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ Id graphql.ID }) (*postResolver, error) {
	postLoader, err := PostLoaderFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := postLoader.Load(ctx, string(args.Id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &postResolver{root: r, post: p}, nil
}

func (r *Resolver) Posts(ctx context.Context, args struct{ AuthorId *graphql.ID }) ([]*postResolver, error) {
	options := &post.FindOptions{}
	if args.AuthorId != nil {
		options.AuthorIds = []string{string(*args.AuthorId)}
	}

	posts, err := r.postService.FindPosts(ctx, options)
	if err != nil {
		return nil, err
	}
	return adapt.Array(posts, r.toPostResolver), nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Name  string
	Email string
}) (*userResolver, error) {
	u, err := r.userService.CreateUser(ctx, &user.CreateOptions{
		Name:  args.Name,
		Email: args.Email,
	})
	if err != nil {
		return nil, err
	}

	// the created user is already known, no need to fetch it again
	if userLoader, err := UserLoaderFromContext(ctx); err == nil {
		userLoader.Prime(ctx, u.Id, u)
	}

	return &userResolver{root: r, user: u}, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct {
	AuthorId graphql.ID
	Title    string
	Content  string
}) (*postResolver, error) {
	p, err := r.postService.CreatePost(ctx, &post.CreateOptions{
		AuthorId: string(args.AuthorId),
		Title:    args.Title,
		Content:  args.Content,
	})
	if err != nil {
		return nil, err
	}

	if postLoader, err := PostLoaderFromContext(ctx); err == nil {
		postLoader.Prime(ctx, p.Id, p)
	}

	return &postResolver{root: r, post: p}, nil
}

func (r *Resolver) toUserResolver(u *user.User) *userResolver {
	return &userResolver{root: r, user: u}
}

func (r *Resolver) toPostResolver(p *post.Post) *postResolver {
	return &postResolver{root: r, post: p}
}

type userResolver struct {
	root *Resolver
	user *user.User
}

func (r *userResolver) ID() graphql.ID {
	return graphql.ID(r.user.Id)
}

func (r *userResolver) Name() string {
	return r.user.Name
}

func (r *userResolver) Email() string {
	return r.user.Email
}

func (r *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := r.root.postService.FindPosts(ctx, &post.FindOptions{
		AuthorIds: []string{r.user.Id},
	})
	if err != nil {
		return nil, err
	}
	return adapt.Array(posts, r.root.toPostResolver), nil
}

type postResolver struct {
	root *Resolver
	post *post.Post
}

func (r *postResolver) ID() graphql.ID {
	return graphql.ID(r.post.Id)
}

func (r *postResolver) Title() string {
	return r.post.Title
}

func (r *postResolver) Content() string {
	return r.post.Content
}

func (r *postResolver) Author(ctx context.Context) (*userResolver, error) {
	userLoader, err := UserLoaderFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := userLoader.Load(ctx, r.post.AuthorId)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}
	return &userResolver{root: r.root, user: u}, nil
}
