package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, buildTime, commit string) {
	t.Helper()
	origVersion, origBuildTime, origCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() {
		Version, BuildTime, GitCommit = origVersion, origBuildTime, origCommit
	})
	Version, BuildTime, GitCommit = version, buildTime, commit
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "dev", Get())
	assert.Equal(t, BuildInfo{Version: "dev", BuildTime: "unknown", GitCommit: "unknown"}, Info())
}

func TestInjectedValues(t *testing.T) {
	withBuild(t, "v1.4.2", "2026-03-14T09:26:53Z", "9f2c1ab")

	assert.Equal(t, "v1.4.2", Get())
	assert.Equal(t, "v1.4.2 (commit 9f2c1ab, built 2026-03-14T09:26:53Z)", Info().String())
}
