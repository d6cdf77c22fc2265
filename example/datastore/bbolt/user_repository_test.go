package bbolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/UnAfraid/dataloader/example/datastore"
	"github.com/UnAfraid/dataloader/example/user"
)

func newTestRepository(t *testing.T) user.Repository {
	t.Helper()

	db, err := datastore.NewBBoltDB(filepath.Join(t.TempDir(), "test.db"), time.Second)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})

	return NewUserRepository(db)
}

func TestUserRepositoryCreateAndFindOne(t *testing.T) {
	repository := newTestRepository(t)
	ctx := context.Background()

	created, err := repository.Create(ctx, &user.User{Id: "user-1", Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	found, err := repository.FindOne(ctx, &user.FindOneOptions{Id: created.Id})
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if found == nil || found.Name != "Alice" {
		t.Fatalf("expected to find Alice, got %#v", found)
	}

	missing, err := repository.FindOne(ctx, &user.FindOneOptions{Id: "nope"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user, got %#v", missing)
	}
}

func TestUserRepositoryCreateDuplicateId(t *testing.T) {
	repository := newTestRepository(t)
	ctx := context.Background()

	if _, err := repository.Create(ctx, &user.User{Id: "user-1", Name: "Alice"}); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, err := repository.Create(ctx, &user.User{Id: "user-1", Name: "Impostor"})
	if !errors.Is(err, user.ErrUserIdAlreadyExists) {
		t.Fatalf("expected ErrUserIdAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryFindAllFiltersByIds(t *testing.T) {
	repository := newTestRepository(t)
	ctx := context.Background()

	for _, u := range []*user.User{
		{Id: "user-1", Name: "Alice"},
		{Id: "user-2", Name: "Bob"},
		{Id: "user-3", Name: "Carol"},
	} {
		if _, err := repository.Create(ctx, u); err != nil {
			t.Fatalf("failed to create user %s: %v", u.Id, err)
		}
	}

	users, err := repository.FindAll(ctx, &user.FindOptions{Ids: []string{"user-1", "user-3"}})
	if err != nil {
		t.Fatalf("failed to find users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	all, err := repository.FindAll(ctx, &user.FindOptions{})
	if err != nil {
		t.Fatalf("failed to find users: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}
}
