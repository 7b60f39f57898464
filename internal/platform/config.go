package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/scribe/pkg/core"
)

// DefaultMongoDatabase is used when the config names no database.
const DefaultMongoDatabase = "scribe"

// Config is the on-disk configuration file.
type Config struct {
	Adapter string      `yaml:"adapter"`
	Path    string      `yaml:"path"`
	Key     string      `yaml:"key"`
	MongoDB MongoConfig `yaml:"mongodb"`
}

// MongoConfig configures the mongo adapter.
type MongoConfig struct {
	URI      string `yaml:"uri,omitempty"`
	Database string `yaml:"database,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() (Config, error) {
	dir, err := DataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Adapter: AdapterFS,
		Path:    dir,
		Key:     core.DefaultKey,
		MongoDB: MongoConfig{Database: DefaultMongoDatabase},
	}, nil
}

// LoadConfig reads the YAML file at path (ConfigPath when empty) over the
// defaults, then applies SCRIBE_* environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if path == "" {
		if path, err = ConfigPath(); err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SCRIBE_ADAPTER, SCRIBE_PATH, SCRIBE_KEY,
// SCRIBE_MONGODB_URI and SCRIBE_MONGODB_DATABASE when they are set.
func (c *Config) ApplyEnv() {
	envs := []struct {
		name  string
		field *string
	}{
		{"SCRIBE_ADAPTER", &c.Adapter},
		{"SCRIBE_PATH", &c.Path},
		{"SCRIBE_KEY", &c.Key},
		{"SCRIBE_MONGODB_URI", &c.MongoDB.URI},
		{"SCRIBE_MONGODB_DATABASE", &c.MongoDB.Database},
	}
	for _, e := range envs {
		if v, ok := os.LookupEnv(e.name); ok && v != "" {
			*e.field = v
		}
	}
}

// Validate checks the adapter name and its required settings.
func (c Config) Validate() error {
	if !slices.Contains(Adapters(), c.Adapter) {
		return fmt.Errorf("unknown adapter %q (want one of %v)", c.Adapter, Adapters())
	}
	if c.Adapter == AdapterMongo && c.MongoDB.URI == "" {
		return errors.New("adapter mongo requires mongodb.uri")
	}
	return nil
}

// Options converts the config into functional options.
func (c Config) Options() []Option {
	return []Option{
		WithAdapter(c.Adapter),
		WithPath(c.Path),
		WithKey(c.Key),
		WithMongo(c.MongoDB.URI, c.MongoDB.Database),
	}
}

// YAML renders the config as it would appear in the file.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
