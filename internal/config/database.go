package config

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type DatabaseConfig struct {
	BaseConfig
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port            int           `envconfig:"POSTGRES_PORT" default:"5432" validate:"min=1,max=65535"`
	User            string        `envconfig:"POSTGRES_USER" default:"postgres"`
	Password        string        `envconfig:"POSTGRES_PASSWORD" default:""`
	Database        string        `envconfig:"POSTGRES_DB" default:"messenger"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
}

func (c *PostgresConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DSN is a URL so that credentials with spaces or quotes survive intact.
func (c *PostgresConfig) DSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Address(),
		Path:     "/" + c.Database,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

func (c *PostgresConfig) GetMaxOpenConns() int {
	return c.MaxOpenConns
}

func (c *PostgresConfig) GetMaxIdleConns() int {
	return c.MaxIdleConns
}

func (c *PostgresConfig) GetConnMaxLifetime() time.Duration {
	return c.ConnMaxLifetime
}

func (c *PostgresConfig) GetConnMaxIdleTime() time.Duration {
	return c.ConnMaxIdleTime
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
