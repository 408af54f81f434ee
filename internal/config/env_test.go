package config

import (
	"os"

	"github.com/stretchr/testify/suite"
)

var baseEnvVars = []string{
	"ENV", "LOGGER_LEVEL", "LOGGER_FORMAT",
	"LOGGER_FILE_PATH", "LOGGER_FILE_MAX_SIZE_MB", "LOGGER_FILE_MAX_BACKUPS",
	"LOGGER_FILE_MAX_AGE_DAYS", "LOGGER_FILE_COMPRESS",
}

// envSuite clears the listed variables before each test and restores them afterwards.
type envSuite struct {
	suite.Suite
	envVars     []string
	originalEnv map[string]string
}

func (s *envSuite) SetupTest() {
	s.originalEnv = make(map[string]string)
	for _, env := range s.envVars {
		if val, exists := os.LookupEnv(env); exists {
			s.originalEnv[env] = val
		}
	}
	s.clearEnv()
}

func (s *envSuite) TearDownTest() {
	s.clearEnv()
	for env, val := range s.originalEnv {
		s.Require().NoError(os.Setenv(env, val))
	}
}

func (s *envSuite) setEnv(vars map[string]string) {
	for key, value := range vars {
		s.Require().NoError(os.Setenv(key, value))
	}
}

func (s *envSuite) clearEnv() {
	for _, env := range s.envVars {
		s.Require().NoError(os.Unsetenv(env))
	}
}
