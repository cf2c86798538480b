package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"skyrings/internal/flight"
)

// Environment variables read after the optional .env file.
const (
	EnvSeed   = "SKYRINGS_SEED"
	EnvConfig = "SKYRINGS_CONFIG"
	EnvMute   = "SKYRINGS_MUTE"
)

// Config is everything a frontend needs to start a session.
type Config struct {
	Tuning flight.Tuning
	Seed   uint64
	Mute   bool
	Path   string // tuning file the values came from, empty for built-in defaults
}

// Defaults is the built-in tuning with a clock seed.
func Defaults() Config {
	return Config{
		Tuning: flight.DefaultTuning(),
		Seed:   uint64(time.Now().UnixNano()),
	}
}

// Load builds a Config from defaults, then an optional .env file, then the
// tuning file named by path (or SKYRINGS_CONFIG when path is empty). A
// missing .env is not an error; a missing explicit tuning file is.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if s := os.Getenv(EnvSeed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = v
	}
	if s := os.Getenv(EnvMute); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMute, err)
		}
		cfg.Mute = v
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		t, err := LoadTuning(path, cfg.Tuning)
		if err != nil {
			return cfg, err
		}
		cfg.Tuning = t
		cfg.Path = path
	}

	if err := cfg.Tuning.Validate(); err != nil {
		return cfg, fmt.Errorf("tuning: %w", err)
	}
	return cfg, nil
}

// LoadTuning reads a YAML tuning file on top of base. Keys absent from the
// file keep their base values.
func LoadTuning(path string, base flight.Tuning) (flight.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data, base)
}

func ParseTuning(data []byte, base flight.Tuning) (flight.Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	return t, nil
}

// MarshalTuning renders t as YAML, e.g. to seed a tuning file.
func MarshalTuning(t flight.Tuning) ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal tuning: %w", err)
	}
	return out, nil
}
