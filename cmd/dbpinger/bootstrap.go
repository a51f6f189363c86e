package main

import (
	"errors"
	"fmt"

	"github.com/aatumaykin/dbpinger/internal/config"
	"github.com/aatumaykin/dbpinger/internal/constants"
	"github.com/aatumaykin/dbpinger/internal/logger"
	"github.com/aatumaykin/dbpinger/internal/messages"
)

// bootstrap loads .env, the optional config file and the logger.
// The returned config already carries the connection string from the environment.
func bootstrap() (*config.Config, *logger.Logger, error) {
	if err := config.LoadEnvOptional(constants.DefaultEnvPath); err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadOptional(constants.DefaultConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, nil, errors.New(messages.FormatValidationErrors(errs))
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg.ResolveEnv()
	return cfg, log, nil
}
