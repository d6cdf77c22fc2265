// Package dataloader provides a generic batching and caching loader for
// bulk key based lookups, commonly used to solve the N+1 query problem in
// GraphQL resolvers.
//
// A Loader collects keys requested during a short batching window into a
// single call to a caller supplied batch function, then fans the results
// back out to each caller in key order. Results are memoized per Loader
// instance, so a Loader is typically created once per incoming request and
// discarded with it.
//
//	loader := dataloader.NewBatchedLoader(func(ctx context.Context, ids []string) []*dataloader.Result[*User] {
//		users, err := userService.FindUsers(ctx, &user.FindOptions{Ids: ids})
//		return dataloader.ResultMap(ids, users, func(u *User) string { return u.Id }, err)
//	})
//
//	user, err := loader.Load(ctx, "user-1")
//
// The batch function receives the distinct keys in first seen order and must
// return exactly one result per key, in the same order.
package dataloader
