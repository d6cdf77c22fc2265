package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/UnAfraid/dataloader/example/api"
	"github.com/UnAfraid/dataloader/example/config"
	"github.com/UnAfraid/dataloader/example/datastore"
	"github.com/UnAfraid/dataloader/example/datastore/bbolt"
	"github.com/UnAfraid/dataloader/example/post"
	"github.com/UnAfraid/dataloader/example/user"
)

const (
	appName = "dataloader-example"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339,
	})

	conf, err := config.Load(appName)
	if err != nil {
		logrus.
			WithError(err).
			Fatal("failed to initialize config")
		return
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGTERM, syscall.SIGINT)

	if _, err := maxprocs.Set(maxprocs.Logger(logrus.Printf)); err != nil {
		logrus.
			WithError(err).
			Error("failed to set maxprocs")
		return
	}

	logrus.Info("initializing database..")
	db, err := datastore.NewBBoltDB(conf.BoltDB.Path, conf.BoltDB.Timeout)
	if err != nil {
		logrus.
			WithError(err).
			Fatal("failed to initialize datastore")
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			logrus.
				WithError(err).
				Error("failed to close datastore")
		}
	}()

	userRepository := bbolt.NewUserRepository(db)
	userService := user.NewService(userRepository)

	postRepository := bbolt.NewPostRepository(db)
	postService := post.NewService(postRepository)

	if err := seedDemoData(context.Background(), userService, postService); err != nil {
		logrus.
			WithError(err).
			Fatal("failed to seed demo data")
		return
	}

	router, err := api.NewRouter(conf, userService, postService)
	if err != nil {
		logrus.
			WithError(err).
			Fatal("failed to initialize router")
		return
	}

	httpServer := http.Server{
		Addr:    conf.HttpServer.Address(),
		Handler: router,
	}

	go func() {
		logrus.WithField("address", conf.HttpServer.Address()).Info("Starting serving http server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.
				WithError(err).
				Fatal("failed to listen and serve http server")
		}
	}()

	<-shutdownChan
	logrus.Info("Shutting down")

	httpServerShutdownTimeoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(httpServerShutdownTimeoutCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.
			WithError(err).
			Fatal("failed to shutdown http server")
		return
	}
}

// seedDemoData creates a couple of users with posts so the example responds
// with something interesting on first run.
func seedDemoData(ctx context.Context, userService user.Service, postService post.Service) error {
	users, err := userService.FindUsers(ctx, &user.FindOptions{})
	if err != nil {
		return err
	}
	if len(users) != 0 {
		return nil
	}

	seed := []struct {
		name   string
		email  string
		titles []string
	}{
		{
			name:   "Alice",
			email:  "alice@example.com",
			titles: []string{"Batching explained", "Why N+1 hurts"},
		},
		{
			name:   "Bob",
			email:  "bob@example.com",
			titles: []string{"Caching per request"},
		},
	}

	for _, entry := range seed {
		u, err := userService.CreateUser(ctx, &user.CreateOptions{
			Name:  entry.name,
			Email: entry.email,
		})
		if err != nil {
			return err
		}

		for _, title := range entry.titles {
			if _, err := postService.CreatePost(ctx, &post.CreateOptions{
				AuthorId: u.Id,
				Title:    title,
				Content:  "...",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
