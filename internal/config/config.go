// Package config resolves the immutable run configuration for cmdntfy.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/cmdntfy/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as fallbacks for flags.
const EnvPrefix = "NTFY_"

// Configuration is the resolved run configuration. It is built once by
// Resolve and must not be modified afterwards.
type Configuration struct {
	URL     string   `koanf:"url" validate:"required"`
	Token   string   `koanf:"token"`
	Command []string `koanf:"-" validate:"min=1"`
}

// Executable returns the program to run (first element of the command line).
func (c *Configuration) Executable() string {
	return c.Command[0]
}

// Args returns the arguments passed to the executable.
func (c *Configuration) Args() []string {
	return c.Command[1:]
}

// HasToken reports whether notifications are sent authenticated.
func (c *Configuration) HasToken() bool {
	return c.Token != ""
}

// Options carries the raw inputs to Resolve.
type Options struct {
	// Flags holds only the flags explicitly set on the command line,
	// keyed by config key ("url", "token").
	Flags map[string]string

	// ConfigPath is an optional JSON config file. Empty means none.
	ConfigPath string

	// Command is the positional command line.
	Command []string
}

// Resolve builds the Configuration.
// Priority: Flags > Environment variables > Config file (if given) > Defaults
func Resolve(opts Options) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if opts.ConfigPath != "" {
		path := expandHomePath(opts.ConfigPath)
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, errors.InvalidConfigFile(path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	for key, value := range opts.Flags {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set flag %s: %w", key, err)
		}
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Command = append([]string(nil), opts.Command...)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate maps struct validation failures onto CLI errors.
func validate(cfg *Configuration) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch verrs[0].Field() {
	case "URL":
		return errors.MissingURL("")
	case "Command":
		return errors.MissingCommand("")
	default:
		return errors.NewConfigError(fmt.Sprintf("config validation failed: %v", err))
	}
}

// envTransform converts environment variable names to config keys
// Example: NTFY_URL -> url
// Empty values are skipped so they fall through to the config file.
func envTransform(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
