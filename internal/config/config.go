package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/mtuoc/MTUOC-TBX/pkg/log"
)

// Config holds the converter settings.
//
// Environment Variables:
// - TBXCONV_CONFIG: optional YAML file; environment values still win
// - TBXCONV_LOG_LEVEL: debug, info, warn, error (default: info)
// - TBXCONV_LOG_FILE: append logs to this file instead of stdout
// - TBXCONV_INPUT_SHEET: workbook sheet to read (default: first sheet)
// - TBXCONV_OUTPUT_SHEET: sheet name for written workbooks (default: Sheet1)
// - TBXCONV_CHECK_LANG_TAGS: warn about language columns that are not BCP 47 tags (default: true)
// - TBXCONV_CHECK_CONTENT_LANG: warn when a definition reads as another language (default: false)
//
// A .env file in the working directory is loaded first when present.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Sheet SheetConfig `yaml:"sheet"`
	Check CheckConfig `yaml:"check"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"TBXCONV_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file" env:"TBXCONV_LOG_FILE"`
}

type SheetConfig struct {
	Input  string `yaml:"input" env:"TBXCONV_INPUT_SHEET"`
	Output string `yaml:"output" env:"TBXCONV_OUTPUT_SHEET" env-default:"Sheet1"`
}

type CheckConfig struct {
	LanguageTags    bool `yaml:"language_tags" env:"TBXCONV_CHECK_LANG_TAGS" env-default:"true"`
	ContentLanguage bool `yaml:"content_language" env:"TBXCONV_CHECK_CONTENT_LANG" env-default:"false"`
}

// maxSheetName is the longest sheet name a workbook accepts.
const maxSheetName = 31

// Option is a function type for configuring Config
type Option func(*Config)

func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.Log.Level = level
	}
}

func WithLogFile(path string) Option {
	return func(c *Config) {
		c.Log.File = path
	}
}

func WithInputSheet(name string) Option {
	return func(c *Config) {
		c.Sheet.Input = name
	}
}

func WithOutputSheet(name string) Option {
	return func(c *Config) {
		c.Sheet.Output = name
	}
}

func WithContentCheck(enabled bool) Option {
	return func(c *Config) {
		c.Check.ContentLanguage = enabled
	}
}

// New loads .env, then the optional YAML file named by TBXCONV_CONFIG,
// then the environment, and applies opts last.
func New(opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if path := os.Getenv("TBXCONV_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	log.Debug("Config: %+v", cfg)
	return &cfg, nil
}

func (c *Config) validate() error {
	if !log.ValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	name := strings.TrimSpace(c.Sheet.Output)
	if name == "" {
		return fmt.Errorf("output sheet name is required")
	}
	if len([]rune(name)) > maxSheetName {
		return fmt.Errorf("output sheet name %q is longer than %d characters", name, maxSheetName)
	}
	return nil
}

// Logger builds the logger described by c. The returned close function
// releases the log file, if any.
func (c *Config) Logger() (*log.Logger, func() error, error) {
	level := log.ParseLevel(c.Log.Level)
	if c.Log.File == "" {
		return log.NewLogger(level), func() error { return nil }, nil
	}

	fl, err := log.NewFileLogger(c.Log.File, level)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	return fl.Logger, fl.Close, nil
}
