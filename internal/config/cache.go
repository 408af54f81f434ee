package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type CacheConfig struct {
	BaseConfig
	Redis RedisConfig `envconfig:"REDIS"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0,lte=15"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s" validate:"gt=0"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s" validate:"gt=0"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s" validate:"gt=0"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10" validate:"gt=0"`
}

func (c *RedisConfig) GetAddr() string {
	return c.Addr
}

func (c *RedisConfig) GetPassword() string {
	return c.Password
}

func (c *RedisConfig) GetDB() int {
	return c.DB
}

func (c *RedisConfig) GetDialTimeout() time.Duration {
	return c.DialTimeout
}

func (c *RedisConfig) GetReadTimeout() time.Duration {
	return c.ReadTimeout
}

func (c *RedisConfig) GetWriteTimeout() time.Duration {
	return c.WriteTimeout
}

func (c *RedisConfig) GetPoolSize() int {
	return c.PoolSize
}

func LoadCache() (*CacheConfig, error) {
	var cfg CacheConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
