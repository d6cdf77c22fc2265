package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/UnAfraid/dataloader/example/config"
	"github.com/UnAfraid/dataloader/example/post"
	"github.com/UnAfraid/dataloader/example/user"
)

func NewRouter(
	conf *config.Config,
	userService user.Service,
	postService post.Service,
) (http.Handler, error) {
	schema, err := graphql.ParseSchema(Schema, NewResolver(userService, postService))
	if err != nil {
		return nil, err
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: conf.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	router := chi.NewRouter()
	router.Use(corsMiddleware.Handler)
	router.Use(NewDataLoaderMiddleware(conf.DataLoaderWait, conf.DataLoaderMaxBatch, userService, postService))
	router.Handle("/graphql", &relay.Handler{Schema: schema})
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return router, nil
}
