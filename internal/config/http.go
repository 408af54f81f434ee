package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"HTTP_SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"30s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s" validate:"gt=0"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s" validate:"gt=0"`
}

type RateLimitConfig struct {
	GlobalRequests int           `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"gt=0"`
	GlobalWindow   time.Duration `envconfig:"GLOBAL_WINDOW" default:"1m" validate:"gt=0"`
	RequestsPerIP  int           `envconfig:"REQUESTS_PER_IP" default:"100" validate:"gt=0"`
	IPWindow       time.Duration `envconfig:"IP_WINDOW" default:"1m" validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400" validate:"gte=0"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
