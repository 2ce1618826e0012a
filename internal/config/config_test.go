package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{"defaults", nil, Config{InputDir: "."}},
		{"empty dir", map[string]string{EnvInputDir: ""}, Config{InputDir: "."}},
		{
			name: "all set",
			env: map[string]string{
				EnvInputDir:    "inputs",
				EnvDebug:       "true",
				EnvMetricsFile: "aoc.prom",
				EnvSamplesFile: "samples.yaml",
			},
			want: Config{InputDir: "inputs", Debug: true, MetricsFile: "aoc.prom", SamplesFile: "samples.yaml"},
		},
		{"debug off", map[string]string{EnvDebug: "0"}, Config{InputDir: "."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEnv(env(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromEnvBadDebug(t *testing.T) {
	_, err := FromEnv(env(map[string]string{EnvDebug: "loud"}))
	assert.ErrorContains(t, err, "want a boolean")
}

// unsetenv clears key for the rest of the test.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad(t *testing.T) {
	for _, k := range []string{EnvInputDir, EnvDebug, EnvMetricsFile, EnvSamplesFile} {
		unsetenv(t, k)
	}
	t.Setenv(EnvMetricsFile, "from-env.prom")

	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("AOC_INPUT_DIR=puzzles\nAOC_DEBUG=1\nAOC_METRICS_FILE=from-file.prom\n"), 0o644))

	c, err := Load(dotenv, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "puzzles", Debug: true, MetricsFile: "from-env.prom"}, c)
}
