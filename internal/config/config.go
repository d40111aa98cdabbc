package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/inoxlang/titlecase/internal/cache"
	"github.com/inoxlang/titlecase/internal/titlecase"

	_ "embed"
)

const (
	APP_NAME = "titlecase"

	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = APP_NAME + "/" + CONFIG_FILE_NAME
	CONFIG_FILE_PERM    = 0o600

	DEFAULT_LOG_LEVEL = zerolog.WarnLevel

	COLOR_AUTO   = "auto"
	COLOR_ALWAYS = "always"
	COLOR_NEVER  = "never"
)

var (
	//go:embed default_config.yaml
	DEFAULT_CONFIG_FILE_CONTENT string

	FORCE_COLOR bool
	NO_COLOR    bool

	//true if FORCE_COLOR is set and NO_COLOR is not, the terminal capabilities are detected by termenv.
	SHOULD_COLORIZE bool

	ErrConfigFileNotFound = errors.New("configuration file not found")
)

func init() {
	initColorEnv()
}

func initColorEnv() {
	FORCE_COLOR, NO_COLOR = false, false

	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	SHOULD_COLORIZE = !NO_COLOR && FORCE_COLOR
}

type Config struct {
	SmallWords    []string `yaml:"small_words"`
	Abbreviations []string `yaml:"abbreviations"`
	LogLevel      string   `yaml:"log_level"`
	CacheSize     *int     `yaml:"cache_size"`
	Color         string   `yaml:"color"`

	//path of the file the configuration was read from, empty for the default configuration.
	Path string `yaml:"-"`
}

// Load reads the configuration file at path, or the file found in the XDG config directories
// if path is empty. The default configuration is returned if there is no file to read.
func Load(path string) (Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
		if err != nil {
			return Config{}, nil
		}
		path = found
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	config, err := Parse(content)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	config.Path = path
	return config, nil
}

func Parse(content []byte) (Config, error) {
	var config Config
	if err := yaml.UnmarshalWithOptions(content, &config, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := config.Level(); err != nil {
		return Config{}, err
	}

	switch config.Color {
	case "", COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER:
	default:
		return Config{}, fmt.Errorf("invalid configuration: color should be %s, %s or %s, not %q", COLOR_AUTO, COLOR_ALWAYS, COLOR_NEVER, config.Color)
	}

	if config.CacheSize != nil && *config.CacheSize < 0 {
		return Config{}, fmt.Errorf("invalid configuration: cache_size should not be negative")
	}

	return config, nil
}

// Level returns the log level, DEFAULT_LOG_LEVEL if not set.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return DEFAULT_LOG_LEVEL, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("invalid configuration: log_level: %w", err)
	}
	return level, nil
}

func (c Config) TitleCacheSize() int {
	if c.CacheSize == nil {
		return cache.DEFAULT_TITLE_CACHE_SIZE
	}
	return *c.CacheSize
}

// CaserConfig returns the configuration of a caser that uses the small words and abbreviations
// of the configuration, logger is optional.
func (c Config) CaserConfig(logger *zerolog.Logger) titlecase.Config {
	caserConfig := titlecase.Config{
		SmallWords: c.SmallWords,
		Logger:     logger,
	}
	if len(c.Abbreviations) > 0 {
		caserConfig.Callback = titlecase.AbbreviationCallback(c.Abbreviations...)
	}
	return caserConfig
}

// ShouldColorize reports whether the output written to w should be colorized.
func (c Config) ShouldColorize(w io.Writer) bool {
	switch c.Color {
	case COLOR_ALWAYS:
		return true
	case COLOR_NEVER:
		return false
	}

	if NO_COLOR {
		return false
	}
	if SHOULD_COLORIZE {
		return true
	}
	//Ascii is returned for writers that are not terminals.
	return termenv.NewOutput(w).ColorProfile() != termenv.Ascii
}

// CreateDefaultConfigFile writes the default configuration file in the user's config directory
// if no configuration file is found, the path of the existing or created file is returned.
func CreateDefaultConfigFile() (path string, created bool, err error) {
	path, err = xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
	if err == nil {
		return path, false, nil
	}

	path, err = xdg.ConfigFile(CONFIG_FILE_RELPATH)
	if err != nil {
		return "", false, err
	}

	if err := os.WriteFile(path, []byte(DEFAULT_CONFIG_FILE_CONTENT), CONFIG_FILE_PERM); err != nil {
		return "", false, err
	}

	return path, true, nil
}
