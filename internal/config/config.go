package config

import (
	"messenger/internal/platform/logger"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format logger.Format `envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	File   LogFileConfig `envconfig:"FILE"`
}

// LogFileConfig enables rotated file output when Path is set.
type LogFileConfig struct {
	Path       string `envconfig:"LOGGER_FILE_PATH" default:""`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"100" validate:"gte=1"`
	MaxBackups int    `envconfig:"MAX_BACKUPS" default:"3" validate:"gte=0"`
	MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"28" validate:"gte=0"`
	Compress   bool   `envconfig:"COMPRESS" default:"false"`
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}

func (c *BaseConfig) IsProduction() bool {
	return strings.ToLower(c.Environment) == EnvProduction
}

func (c *BaseConfig) IsStaging() bool {
	return strings.ToLower(c.Environment) == EnvStaging
}

func (c *BaseConfig) IsTest() bool {
	return strings.ToLower(c.Environment) == EnvTest
}

func (c *BaseConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Environment: c.Environment,
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
		File: logger.FileConfig{
			Path:       c.Logger.File.Path,
			MaxSizeMB:  c.Logger.File.MaxSizeMB,
			MaxBackups: c.Logger.File.MaxBackups,
			MaxAgeDays: c.Logger.File.MaxAgeDays,
			Compress:   c.Logger.File.Compress,
		},
	}
}
