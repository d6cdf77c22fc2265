package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/dataloader/example/post"
)

const postBucket = "post"

type postRepository struct {
	db *bbolt.DB
}

func NewPostRepository(db *bbolt.DB) post.Repository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) FindOne(_ context.Context, options *post.FindOneOptions) (*post.Post, error) {
	return dbView(r.db, postBucket, func(_ *bbolt.Tx, bucket *bbolt.Bucket) (p *post.Post, err error) {
		jsonState := bucket.Get([]byte(options.Id))
		if jsonState == nil {
			return nil, nil
		}
		if err := json.Unmarshal(jsonState, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal post: %w", err)
		}
		return p, nil
	})
}

func (r *postRepository) FindAll(_ context.Context, options *post.FindOptions) ([]*post.Post, error) {
	return dbView(r.db, postBucket, func(_ *bbolt.Tx, bucket *bbolt.Bucket) (posts []*post.Post, err error) {
		err = bucket.ForEach(func(k, v []byte) error {
			var p *post.Post
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("failed to unmarshal post: %w", err)
			}
			if len(options.Ids) != 0 && !slices.Contains(options.Ids, p.Id) {
				return nil
			}
			if len(options.AuthorIds) != 0 && !slices.Contains(options.AuthorIds, p.AuthorId) {
				return nil
			}
			posts = append(posts, p)
			return nil
		})
		return posts, err
	})
}

func (r *postRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	return dbUpdate(r.db, postBucket, func(_ *bbolt.Tx, bucket *bbolt.Bucket) (*post.Post, error) {
		id := []byte(p.Id)
		if bucket.Get(id) != nil {
			return nil, post.ErrPostIdAlreadyExists
		}

		jsonState, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal post: %w", err)
		}
		if err := bucket.Put(id, jsonState); err != nil {
			return nil, fmt.Errorf("failed to store post: %w", err)
		}
		return p, nil
	})
}
