package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/dataloader/example/user"
)

const userBucket = "user"

type userRepository struct {
	db *bbolt.DB
}

func NewUserRepository(db *bbolt.DB) user.Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindOne(_ context.Context, options *user.FindOneOptions) (*user.User, error) {
	return dbView(r.db, userBucket, func(_ *bbolt.Tx, bucket *bbolt.Bucket) (u *user.User, err error) {
		jsonState := bucket.Get([]byte(options.Id))
		if jsonState == nil {
			return nil, nil
		}
		if err := json.Unmarshal(jsonState, &u); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user: %w", err)
		}
		return u, nil
	})
}

func (r *userRepository) FindAll(_ context.Context, options *user.FindOptions) ([]*user.User, error) {
	return dbView(r.db, userBucket, func(_ *bbolt.Tx, bucket *bbolt.Bucket) (users []*user.User, err error) {
		err = bucket.ForEach(func(k, v []byte) error {
			var u *user.User
			if err := json.Unmarshal(v, &u); err != nil {
				return fmt.Errorf("failed to unmarshal user: %w", err)
			}
			if len(options.Ids) != 0 && !slices.Contains(options.Ids, u.Id) {
				return nil
			}
			users = append(users, u)
			return nil
		})
		return users, err
	})
}

func (r *userRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	return dbUpdate(r.db, userBucket, func(_ *bbolt.Tx, bucket *bbolt.Bucket) (*user.User, error) {
		id := []byte(u.Id)
		if bucket.Get(id) != nil {
			return nil, user.ErrUserIdAlreadyExists
		}

		jsonState, err := json.Marshal(u)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal user: %w", err)
		}
		if err := bucket.Put(id, jsonState); err != nil {
			return nil, fmt.Errorf("failed to store user: %w", err)
		}
		return u, nil
	})
}
