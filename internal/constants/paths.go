package constants

// DefaultEnvPath is the default path to the .env file
const DefaultEnvPath = "./.env"

// DefaultConfigPath is the default path to the optional dbpinger.toml file
const DefaultConfigPath = "./dbpinger.toml"

// WorkflowPath is where the setup wizard writes the GitHub Actions workflow.
const WorkflowPath = ".github/workflows/ping.yml"

// EnvExamplePath is the example environment file written next to the workflow.
const EnvExamplePath = ".env.example"

// GitConfigPath is checked to decide whether manual git instructions are shown.
const GitConfigPath = ".git/config"
