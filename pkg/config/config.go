// Package config loads and validates the run configuration.
//
// Values come from the environment (optionally seeded from a .env file) and
// can be overridden by a YAML file for operators who prefer editing a config
// over exporting variables. Validation fails fast: a bad port, an empty
// secret or an out-of-range delay stops the run before a single message is
// attempted.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailroom/pkg/logger"
	"github.com/dmitrymomot/mailroom/pkg/mailer/resend"
	"github.com/dmitrymomot/mailroom/pkg/mailer/smtp"
)

// ErrInvalid indicates the configuration failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

const (
	defaultSubject = "Modelo 347 - Declaración Anual de Operaciones con Terceras Personas"
	defaultBody    = "Estimado/a {{.Name}},\n\n" +
		"Adjunto encontrará la carta informativa correspondiente al ejercicio fiscal.\n\n" +
		"Atentamente."
)

// Config is the full pipeline configuration. Provider selects the transport;
// only the selected provider's block is validated.
type Config struct {
	Provider string        `env:"MAIL_PROVIDER" yaml:"provider" envDefault:"smtp" validate:"oneof=smtp resend"`
	SMTP     smtp.Config   `yaml:"smtp"`
	Resend   resend.Config `yaml:"resend"`

	SubjectTemplate string `env:"MAIL_SUBJECT" yaml:"subject_template" validate:"required"`
	BodyTemplate    string `env:"MAIL_BODY" yaml:"body_template" validate:"required"`

	// DelaySeconds is the pause between successive sends, bounded to keep
	// the provider's per-minute rate limit happy.
	DelaySeconds int `env:"SEND_DELAY_SECONDS" yaml:"delay_seconds" envDefault:"2" validate:"min=1,max=10"`

	// Threshold is the minimum accepted match score.
	Threshold int `env:"MATCH_THRESHOLD" yaml:"threshold" envDefault:"80" validate:"min=1,max=100"`

	// Marker starts a new letter when splitting a combined PDF.
	Marker string `env:"LETTER_MARKER" yaml:"marker"`

	Sentry logger.SentryConfig `yaml:"sentry"`
}

// Delay returns the inter-send pause as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds) * time.Second
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present; a YAML file at yamlPath (optional,
// empty to skip) overrides environment values. Returns ErrInvalid when
// validation fails.
func Load(yamlPath string) (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse environment: %w", err)
	}

	if yamlPath != "" {
		raw, err := os.ReadFile(yamlPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", yamlPath, err)
		}
	}

	if cfg.SubjectTemplate == "" {
		cfg.SubjectTemplate = defaultSubject
	}
	if cfg.BodyTemplate == "" {
		cfg.BodyTemplate = defaultBody
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration, including the selected provider block.
func (c Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Provider {
	case "smtp":
		if err := v.Struct(c.SMTP); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	case "resend":
		if c.Resend.APIKey == "" || c.Resend.SenderEmail == "" {
			return fmt.Errorf("%w: resend requires RESEND_API_KEY and RESEND_FROM_EMAIL", ErrInvalid)
		}
	}
	return nil
}
