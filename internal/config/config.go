// Package config reads run settings from the environment and an optional
// .env file.
package config

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment keys.
const (
	EnvInputDir    = "AOC_INPUT_DIR"
	EnvDebug       = "AOC_DEBUG"
	EnvMetricsFile = "AOC_METRICS_FILE"
	EnvSamplesFile = "AOC_SAMPLES_FILE"
)

type Config struct {
	// InputDir holds the puzzle inputs, named <day>.input.
	InputDir    string
	Debug       bool
	MetricsFile string
	// SamplesFile replaces the embedded sample catalogue when set.
	SamplesFile string
}

// Load reads the given .env files (".env" when none are named) into the
// environment and then builds a Config from it. Missing files are skipped.
// Variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "loading %s", f)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup. Empty values count as unset.
func FromEnv(lookup func(key string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	c := Config{
		InputDir:    get(EnvInputDir),
		MetricsFile: get(EnvMetricsFile),
		SamplesFile: get(EnvSamplesFile),
	}
	if c.InputDir == "" {
		c.InputDir = "."
	}
	if v := get(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Errorf("%s=%q: want a boolean", EnvDebug, v)
		}
		c.Debug = debug
	}
	return c, nil
}
