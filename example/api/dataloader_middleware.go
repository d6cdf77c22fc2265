package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/UnAfraid/dataloader"
	"github.com/UnAfraid/dataloader/example/post"
	"github.com/UnAfraid/dataloader/example/user"
)

type contextKey struct {
	name string
}

var (
	userLoaderCtxKey = &contextKey{"userLoader"}
	postLoaderCtxKey = &contextKey{"postLoader"}
)

// NewDataLoaderMiddleware installs one loader per entity into the request
// context, so loaders and their caches live exactly as long as one request.
func NewDataLoaderMiddleware(
	wait time.Duration,
	maxBatch int,
	userService user.Service,
	postService post.Service,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ctx = context.WithValue(ctx, userLoaderCtxKey, newBatchedLoader("user", userBatchFn(userService), wait, maxBatch))
			ctx = context.WithValue(ctx, postLoaderCtxKey, newBatchedLoader("post", postBatchFn(postService), wait, maxBatch))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserLoaderFromContext(ctx context.Context) (*dataloader.Loader[string, *user.User], error) {
	return dataLoaderFromContext[string, *user.User](ctx, userLoaderCtxKey)
}

func PostLoaderFromContext(ctx context.Context) (*dataloader.Loader[string, *post.Post], error) {
	return dataLoaderFromContext[string, *post.Post](ctx, postLoaderCtxKey)
}

func dataLoaderFromContext[K comparable, T any](ctx context.Context, contextKey *contextKey) (*dataloader.Loader[K, T], error) {
	dataLoader, ok := ctx.Value(contextKey).(*dataloader.Loader[K, T])
	if !ok {
		var nodeType T
		return nil, fmt.Errorf("%T data loader not found", nodeType)
	}
	return dataLoader, nil
}

func userBatchFn(userService user.Service) dataloader.BatchFunc[string, *user.User] {
	return func(ctx context.Context, ids []string) []*dataloader.Result[*user.User] {
		users, err := userService.FindUsers(ctx, &user.FindOptions{
			Ids: ids,
		})
		return dataloader.ResultMap(ids, users, func(item *user.User) string {
			if item == nil {
				return ""
			}
			return item.Id
		}, err)
	}
}

func postBatchFn(postService post.Service) dataloader.BatchFunc[string, *post.Post] {
	return func(ctx context.Context, ids []string) []*dataloader.Result[*post.Post] {
		posts, err := postService.FindPosts(ctx, &post.FindOptions{
			Ids: ids,
		})
		return dataloader.ResultMap(ids, posts, func(item *post.Post) string {
			if item == nil {
				return ""
			}
			return item.Id
		}, err)
	}
}

func newBatchedLoader[K comparable, V any](name string, batchFn dataloader.BatchFunc[K, V], wait time.Duration, maxBatch int) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithMaxBatch[K, V](maxBatch),
		dataloader.WithTracer[K, V](newLogTracer[K, V](name)),
	)
}
