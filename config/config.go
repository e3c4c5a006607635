package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyWarningMinutes = "thresholds.warning_minutes"
	KeyErrorMinutes   = "thresholds.error_minutes"
	KeyServePort      = "serve.port"
)

type Config struct {
	Thresholds ThresholdConfig `mapstructure:"thresholds" validate:"required"`
	Serve      ServeConfig     `mapstructure:"serve"`
}

type ThresholdConfig struct {
	WarningMinutes float64 `mapstructure:"warning_minutes" validate:"gt=0"`
	ErrorMinutes   float64 `mapstructure:"error_minutes" validate:"gt=0"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# logmon configuration
thresholds:
  warning_minutes: 5
  error_minutes: 10

serve:
  port: 8080
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if cfg.Thresholds.ErrorMinutes < cfg.Thresholds.WarningMinutes {
		return nil, fmt.Errorf(
			"validation failed: thresholds.error_minutes (%v) must be >= thresholds.warning_minutes (%v)",
			cfg.Thresholds.ErrorMinutes,
			cfg.Thresholds.WarningMinutes,
		)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWarningMinutes, 5.0)
	v.SetDefault(KeyErrorMinutes, 10.0)
	v.SetDefault(KeyServePort, 8080)
}
