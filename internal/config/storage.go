package config

import (
	"github.com/kelseyhightower/envconfig"
)

type StorageConfig struct {
	BaseConfig
	Minio MinioConfig `envconfig:"MINIO"`
}

type MinioConfig struct {
	Endpoint     string `envconfig:"ENDPOINT" default:"localhost:9000" validate:"required,hostname_port"`
	AccessKey    string `envconfig:"ACCESS_KEY" default:"minioadmin" validate:"required"`
	SecretKey    string `envconfig:"SECRET_KEY" default:"minioadmin" validate:"required"`
	UseSSL       bool   `envconfig:"USE_SSL" default:"false"`
	Bucket       string `envconfig:"BUCKET" default:"messenger-attachments" validate:"required,min=3,max=63"`
	Region       string `envconfig:"REGION" default:"us-east-1"`
	CreateBucket bool   `envconfig:"CREATE_BUCKET" default:"false"`
}

func (c *MinioConfig) GetEndpoint() string {
	return c.Endpoint
}

func (c *MinioConfig) GetAccessKey() string {
	return c.AccessKey
}

func (c *MinioConfig) GetSecretKey() string {
	return c.SecretKey
}

func (c *MinioConfig) GetUseSSL() bool {
	return c.UseSSL
}

func (c *MinioConfig) GetBucket() string {
	return c.Bucket
}

func (c *MinioConfig) GetRegion() string {
	return c.Region
}

func LoadStorage() (*StorageConfig, error) {
	var cfg StorageConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
