package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("cache: key not found")

// Cache stores opaque values under string keys. A zero ttl means the
// implementation's default.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

type Options struct {
	Addr     string
	Password string
	DB       int

	// KeyPrefix namespaces every key, so several deployments can share one
	// Redis database.
	KeyPrefix  string
	DefaultTTL time.Duration
}

func DefaultOptions() Options {
	return Options{
		KeyPrefix:  "devjobs:",
		DefaultTTL: 5 * time.Minute,
	}
}

// GetJSON loads key and decodes it into v. It returns ErrNotFound on a miss.
func GetJSON(ctx context.Context, c Cache, key string, v interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cache: decoding %s: %w", key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, c Cache, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encoding %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}
