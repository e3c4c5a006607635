package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.Thresholds.WarningMinutes != 5 || cfg.Thresholds.ErrorMinutes != 10 {
		t.Fatalf("unexpected thresholds: %+v", cfg.Thresholds)
	}
	if cfg.Serve.Port != 8080 {
		t.Fatalf("unexpected port: %d", cfg.Serve.Port)
	}
}

func TestValidateYAMLContent_RejectsInvertedThresholds(t *testing.T) {
	t.Parallel()

	content := []byte(`thresholds:
  warning_minutes: 10
  error_minutes: 5
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for inverted thresholds")
	}
	if !strings.Contains(err.Error(), "must be >=") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsNonPositiveThreshold(t *testing.T) {
	t.Parallel()

	content := []byte(`thresholds:
  warning_minutes: 0
  error_minutes: 10
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for zero warning threshold")
	}
}

func TestValidateYAMLContent_RejectsInvalidPort(t *testing.T) {
	t.Parallel()

	content := []byte(`serve:
  port: 70000
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for out-of-range port")
	}
}
