package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HealthConfig struct {
	BaseConfig
	ProbeTimeout time.Duration `envconfig:"HEALTH_PROBE_TIMEOUT" default:"5s" validate:"gt=0"`
}

func LoadHealth() (*HealthConfig, error) {
	var cfg HealthConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
