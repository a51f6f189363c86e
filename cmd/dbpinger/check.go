package main

import (
	"github.com/spf13/cobra"

	"github.com/aatumaykin/dbpinger/internal/checker"
	"github.com/aatumaykin/dbpinger/internal/logger"
	"github.com/aatumaykin/dbpinger/internal/metrics"
)

func checkHandler(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Close()

	log.Debug("Starting check",
		logger.Field{Key: "version", Value: Version},
		logger.Field{Key: "uri_env", Value: cfg.Database.URIEnv})

	opts := []checker.Option{
		checker.WithLogger(log),
		checker.WithOutput(cmd.OutOrStdout()),
	}
	if p := metrics.NewPusher(cfg.Metrics, nil); p != nil {
		opts = append(opts, checker.WithRecorder(p))
	}

	_, err = checker.New(cfg.Database, opts...).Check(cmd.Context())
	return err
}
