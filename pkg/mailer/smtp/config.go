package smtp

// Config holds SMTP provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host   string `env:"SMTP_HOST" yaml:"host" validate:"required,hostname|ip"`
	Port   int    `env:"SMTP_PORT" yaml:"port" envDefault:"587" validate:"min=1,max=65535"`
	Sender string `env:"SMTP_SENDER" yaml:"sender" validate:"required,email"`
	Secret string `env:"SMTP_SECRET" yaml:"secret" validate:"required"`
}
