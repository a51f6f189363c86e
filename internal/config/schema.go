// Package config provides configuration loading and validation for dbpinger.
// It reads an optional TOML file, fills defaults for everything the file
// leaves out and expands ${VAR} / ${VAR:default} references in string values.
//
// Configuration structure:
//   - [database]: name of the environment variable holding the connection string
//   - [logging]: level, format and output of structured logs
//   - [workflow]: contents and location of the generated GitHub Actions workflow
//   - [env_example]: location and placeholder of .env.example
//   - [git]: commit message and remote used by the setup wizard
//   - [metrics]: optional Prometheus Pushgateway for check results
//
// The connection string itself is never read from the file: it always comes
// from the process environment (optionally seeded from .env).
package config

// Config represents the main application configuration.
type Config struct {
	Database   DatabaseConfig   `toml:"database"`
	Logging    LoggingConfig    `toml:"logging"`
	Workflow   WorkflowConfig   `toml:"workflow"`
	EnvExample EnvExampleConfig `toml:"env_example"`
	Git        GitConfig        `toml:"git"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

// DatabaseConfig описывает, откуда брать строку подключения
type DatabaseConfig struct {
	URIEnv string `toml:"uri_env"`
	URI    string `toml:"-"` // заполняется из окружения в ResolveEnv
}

// LoggingConfig представляет конфигурацию логирования
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// WorkflowConfig describes the generated workflow file.
type WorkflowConfig struct {
	Path        string `toml:"path"`
	Name        string `toml:"name"`
	JobName     string `toml:"job_name"`
	RunsOn      string `toml:"runs_on"`
	SetupAction string `toml:"setup_action"`
	GoVersion   string `toml:"go_version"`
	Command     string `toml:"command"`
	SecretName  string `toml:"secret_name"`
}

// EnvExampleConfig describes .env.example.
type EnvExampleConfig struct {
	Path        string `toml:"path"`
	Placeholder string `toml:"placeholder"`
}

// GitConfig holds the values used by the wizard's git steps.
type GitConfig struct {
	CommitMessage string `toml:"commit_message"`
	Remote        string `toml:"remote"`
}

// MetricsConfig enables pushing check results to a Pushgateway.
type MetricsConfig struct {
	PushgatewayURL string `toml:"pushgateway_url"`
	Job            string `toml:"job"`
}
