package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var ErrUnexpectedPong = errors.New("unexpected PING reply")

type Config interface {
	GetAddr() string
	GetPassword() string
	GetDB() int
	GetDialTimeout() time.Duration
	GetReadTimeout() time.Duration
	GetWriteTimeout() time.Duration
	GetPoolSize() int
}

type Client struct {
	*goredis.Client
	config Config
}

// New does not dial; go-redis connects lazily on the first command.
func New(cfg Config) *Client {
	return &Client{
		Client: goredis.NewClient(&goredis.Options{
			Addr:         cfg.GetAddr(),
			Password:     cfg.GetPassword(),
			DB:           cfg.GetDB(),
			DialTimeout:  cfg.GetDialTimeout(),
			ReadTimeout:  cfg.GetReadTimeout(),
			WriteTimeout: cfg.GetWriteTimeout(),
			PoolSize:     cfg.GetPoolSize(),
		}),
		config: cfg,
	}
}

func (c *Client) CheckHealth(ctx context.Context) error {
	pong, err := c.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to ping redis at %s: %w", c.config.GetAddr(), err)
	}
	if pong != "PONG" {
		return fmt.Errorf("%w: %q", ErrUnexpectedPong, pong)
	}
	return nil
}
