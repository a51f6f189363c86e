package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aatumaykin/dbpinger/internal/constants"
)

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadOptional loads path when it exists and falls back to defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return Load(path)
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// ResolveEnv reads the connection string from the configured variable.
// An unset variable leaves URI empty; the checker reports it.
func (c *Config) ResolveEnv() {
	c.Database.URI = strings.TrimSpace(os.Getenv(c.Database.URIEnv))
}

// applyDefaults применяет значения по умолчанию
func applyDefaults(c *Config) {
	if c.Database.URIEnv == "" {
		c.Database.URIEnv = constants.DefaultURIEnv
	}

	if c.Logging.Level == "" {
		c.Logging.Level = constants.DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = constants.DefaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = constants.DefaultLogOutput
	}

	w := &c.Workflow
	if w.Path == "" {
		w.Path = constants.WorkflowPath
	}
	if w.Name == "" {
		w.Name = constants.DefaultWorkflowName
	}
	if w.JobName == "" {
		w.JobName = constants.DefaultJobName
	}
	if w.RunsOn == "" {
		w.RunsOn = constants.DefaultRunsOn
	}
	if w.SetupAction == "" {
		w.SetupAction = constants.DefaultSetupAction
	}
	if w.GoVersion == "" {
		w.GoVersion = constants.DefaultSetupGo
	}
	if w.Command == "" {
		w.Command = constants.DefaultCommand
	}
	if w.SecretName == "" {
		w.SecretName = c.Database.URIEnv
	}

	if c.EnvExample.Path == "" {
		c.EnvExample.Path = constants.EnvExamplePath
	}
	if c.EnvExample.Placeholder == "" {
		c.EnvExample.Placeholder = constants.DefaultURIPlaceholder
	}

	if c.Git.CommitMessage == "" {
		c.Git.CommitMessage = constants.DefaultCommitMessage
	}
	if c.Git.Remote == "" {
		c.Git.Remote = constants.DefaultRemote
	}

	if c.Metrics.Job == "" {
		c.Metrics.Job = constants.DefaultMetricsJob
	}
}

// expandEnvVars расширяет переменные окружения в строковых полях
func expandEnvVars(c *Config) {
	fields := []*string{
		&c.Logging.Output,
		&c.Workflow.Command,
		&c.Workflow.GoVersion,
		&c.EnvExample.Placeholder,
		&c.Git.CommitMessage,
		&c.Metrics.PushgatewayURL,
		&c.Metrics.Job,
	}
	for _, f := range fields {
		*f = expandEnv(*f)
	}
}

// expandEnv расширяет переменную окружения формата ${VAR:default}
func expandEnv(s string) string {
	if !strings.HasPrefix(s, "${") {
		return s
	}

	end := strings.Index(s, "}")
	if end == -1 {
		return s
	}

	content := s[2:end]
	if key, defaultVal, ok := strings.Cut(content, ":"); ok {
		if val := os.Getenv(key); val != "" {
			return val
		}
		return defaultVal
	}

	// Без значения по умолчанию
	return os.Getenv(content)
}
