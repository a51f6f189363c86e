package checker

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisConn struct {
	client *redis.Client
}

func dialRedis(_ context.Context, uri string) (Conn, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	// single attempt
	opts.MaxRetries = -1
	return &redisConn{client: redis.NewClient(opts)}, nil
}

func (c *redisConn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisConn) Close(context.Context) error {
	return c.client.Close()
}
