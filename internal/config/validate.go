package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aatumaykin/dbpinger/internal/logger"
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate проверяет валидность конфигурации
func (c *Config) Validate() []error {
	var errors []error

	if !envNamePattern.MatchString(c.Database.URIEnv) {
		errors = append(errors, fmt.Errorf("database.uri_env is not a valid variable name: %q", c.Database.URIEnv))
	}

	// Проверка logging config
	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		errors = append(errors, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errors = append(errors, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}

	if err := validateRelPath(c.Workflow.Path, "workflow.path"); err != nil {
		errors = append(errors, err)
	}
	if err := validateRelPath(c.EnvExample.Path, "env_example.path"); err != nil {
		errors = append(errors, err)
	}
	if !envNamePattern.MatchString(c.Workflow.SecretName) {
		errors = append(errors, fmt.Errorf("workflow.secret_name is not a valid secret name: %q", c.Workflow.SecretName))
	}
	if strings.ContainsAny(c.Workflow.Name, "\"\n") {
		errors = append(errors, fmt.Errorf("workflow.name must not contain quotes or newlines"))
	}

	if c.Metrics.PushgatewayURL != "" {
		u, err := url.Parse(c.Metrics.PushgatewayURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Errorf("metrics.pushgateway_url is not an absolute URL: %q", c.Metrics.PushgatewayURL))
		}
	}

	return errors
}

// validateRelPath accepts only paths inside the working directory.
func validateRelPath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("%s must be relative to the repository root", fieldName)
	}
	if strings.HasPrefix(filepath.Clean(path), "..") {
		return fmt.Errorf("%s contains potentially dangerous path traversal sequence", fieldName)
	}
	return nil
}
