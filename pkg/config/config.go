// Package config holds the explicit settings threaded through a generation
// run. Nothing here reads ambient process state except FromEnv.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const (
	DefaultLanguage = "en"
	DefaultEncoding = "utf-8"

	EnvLanguage    = "FORMSITE_LANGUAGE"
	EnvEncoding    = "FORMSITE_ENCODING"
	EnvTemplateDir = "FORMSITE_TEMPLATE_DIR"
)

// Config describes one generation run. An empty TemplateDir selects the
// embedded template set.
type Config struct {
	TemplateDir string `json:"template_dir,omitempty"`
	OutputDir   string `json:"output_dir" validate:"required"`
	Language    string `json:"language" validate:"required,pathsegment,ne=meta"`
	Encoding    string `json:"encoding" validate:"required,encoding"`
}

// Defaults returns the values applied to zero fields by Resolve.
func Defaults() Config {
	return Config{
		Language: DefaultLanguage,
		Encoding: DefaultEncoding,
	}
}

// Resolve fills zero fields from Defaults and validates the result.
func Resolve(cfg Config) (Config, error) {
	cfg.TemplateDir = strings.TrimSpace(cfg.TemplateDir)
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	cfg.Language = strings.TrimSpace(cfg.Language)
	cfg.Encoding = strings.TrimSpace(cfg.Encoding)

	if err := mergo.Merge(&cfg, Defaults()); err != nil {
		return Config{}, fmt.Errorf("config: apply defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required fields, the language path segment and the
// encoding label. The language may not be "meta", which names the metadata
// section of the data file.
func (c Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			field := invalid[0]
			return fmt.Errorf("config: %s failed %q validation (value %q)", field.Field(), field.Tag(), field.Value())
		}
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

// TextEncoding returns the encoder for rendered output files.
func (c Config) TextEncoding() (encoding.Encoding, error) {
	enc, err := htmlindex.Get(c.Encoding)
	if err != nil {
		return nil, fmt.Errorf("config: encoding %q: %w", c.Encoding, err)
	}
	return enc, nil
}

// FromEnv reads FORMSITE_* overrides after loading any of the given dotenv
// files (".env" when none are named). Missing dotenv files are ignored; one
// that exists but does not parse is an error.
func FromEnv(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	return Config{
		TemplateDir: os.Getenv(EnvTemplateDir),
		Language:    os.Getenv(EnvLanguage),
		Encoding:    os.Getenv(EnvEncoding),
	}, nil
}

// Merge overlays non-zero fields of override onto base.
func Merge(base, override Config) (Config, error) {
	if err := mergo.Merge(&base, override, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("config: merge: %w", err)
	}
	return base, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
		_, err := htmlindex.Get(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("pathsegment", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "." || value == ".." {
			return false
		}
		return !strings.ContainsAny(value, `/\`)
	})
	return v
}
