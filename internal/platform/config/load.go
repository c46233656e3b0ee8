package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	kfs "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseFile         = "base.yaml"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	fsys      fs.FS
}

// WithConfigDir reads YAML files from dir on disk. Defaults to "configs"
// relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
		o.fsys = nil
	}
}

// WithFS reads YAML files from the root of fsys instead of the disk, e.g.
// the embedded configs.Files.
func WithFS(fsys fs.FS) Option {
	return func(o *loadOptions) {
		o.fsys = fsys
	}
}

// provider returns the koanf provider for one YAML file.
func (o *loadOptions) provider(name string) (koanf.Provider, string) {
	if o.fsys != nil {
		return kfs.Provider(o.fsys, name), path.Join("embedded", name)
	}
	p := filepath.Join(o.configDir, name)
	return file.Provider(p), p
}

// Load builds the configuration from four layers, later layers winning:
//
//  0. built-in defaults (defaults.go)
//  1. base.yaml
//  2. {profile}.yaml
//  3. APP_* environment variables
//
// Environment keys are matched against the keys already loaded so that
// field-internal underscores survive:
//
//	APP_SERVER_PORT                          -> server.port
//	APP_DATABASE_MAX_OPEN_CONNS              -> database.max_open_conns
//	APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES -> database.circuit_breaker.max_failures
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{baseFile, profile + ".yaml"} {
		p, where := o.provider(name)
		if err := k.Load(p, yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", where, err)
		}
	}

	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the env form of every known key ("server_read_timeout")
// to its dotted koanf key ("server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
