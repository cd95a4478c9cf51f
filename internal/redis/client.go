package redis

import (
	"context"
	"fmt"
	"sort"
	"time"

	ierr "glass_office/internal/errors"
	"glass_office/internal/store"

	"github.com/go-redis/redis/v8"
)

// Client stores each collection as one Redis hash: field = document key, value = JSON blob.
type Client struct {
	rdb    *redis.Client
	prefix string
}

func Initialize(redisURL, keyPrefix string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(rdb, keyPrefix), nil
}

// NewWithClient wraps an existing client; used by tests and when sharing a client.
func NewWithClient(rdb *redis.Client, keyPrefix string) *Client {
	return &Client{rdb: rdb, prefix: keyPrefix}
}

func (c *Client) hashKey(collection string) string {
	return c.prefix + collection
}

func (c *Client) Get(ctx context.Context, collection, key string) ([]byte, error) {
	val, err := c.rdb.HGet(ctx, c.hashKey(collection), key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, store.ErrKeyNotFound
		}
		return nil, ierr.Storage(err, "redis hget "+collection)
	}
	return val, nil
}

func (c *Client) Set(ctx context.Context, collection, key string, value []byte) error {
	if err := c.rdb.HSet(ctx, c.hashKey(collection), key, value).Err(); err != nil {
		return ierr.Storage(err, "redis hset "+collection)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, collection, key string) error {
	if err := c.rdb.HDel(ctx, c.hashKey(collection), key).Err(); err != nil {
		return ierr.Storage(err, "redis hdel "+collection)
	}
	return nil
}

func (c *Client) List(ctx context.Context, collection string) ([]string, error) {
	keys, err := c.rdb.HKeys(ctx, c.hashKey(collection)).Result()
	if err != nil {
		return nil, ierr.Storage(err, "redis hkeys "+collection)
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
