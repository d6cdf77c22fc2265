package config

import (
	"time"
)

type BoltDB struct {
	Path    string        `default:"data/example.db"`
	Timeout time.Duration `default:"5s"`
}
