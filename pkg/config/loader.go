package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".corpusrank"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadFile loads a Config from a YAML file. If the file does not exist, it
// returns ErrConfigNotFound; callers decide whether that matters based on
// whether the path was explicitly requested by the user.
func LoadFile(path string) (Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, ErrConfigNotFound
		}
		return c, err
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}

	return c, nil
}

// FindFile searches for the configuration file: an explicit path wins,
// otherwise the current directory is checked, then the home directory.
// It returns an empty string when nothing is found.
func FindFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// FromEnv applies CORPUSRANK_* environment overrides on top of c. A .env
// file in the working directory is loaded first, if present.
func FromEnv(c Config) (Config, error) {
	_ = godotenv.Load() // a missing .env file is not an error

	if v := os.Getenv("CORPUSRANK_DAMPING"); v != "" {
		damping, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("CORPUSRANK_DAMPING: %w", err)
		}
		c.Damping = damping
	}

	if v := os.Getenv("CORPUSRANK_SAMPLES"); v != "" {
		samples, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("CORPUSRANK_SAMPLES: %w", err)
		}
		c.Samples = samples
	}

	if v := os.Getenv("CORPUSRANK_TOLERANCE"); v != "" {
		tolerance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("CORPUSRANK_TOLERANCE: %w", err)
		}
		c.Tolerance = tolerance
	}

	if v := os.Getenv("CORPUSRANK_MAX_ITERATIONS"); v != "" {
		maxIterations, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("CORPUSRANK_MAX_ITERATIONS: %w", err)
		}
		c.MaxIterations = maxIterations
	}

	return c, nil
}
