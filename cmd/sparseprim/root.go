package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// cli holds state shared by all subcommands.
type cli struct {
	logLevel  string
	logFormat string
	log       *log.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	c := &cli{log: log.New()}

	rootCmd := &cobra.Command{
		Use:           "sparseprim",
		Short:         "Minimum spanning forests over sparse adjacency matrices",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setupLogger(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", log.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", logFormatText, "log format (text or json)")

	rootCmd.AddCommand(newMSTCmd(c), newGenerateCmd(c))

	return rootCmd
}

// setupLogger applies --log-level and --log-format. Logs go to stderr so that
// reports and generated graphs on stdout stay clean.
func (c *cli) setupLogger(cmd *cobra.Command) error {
	lvl, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	c.log.SetLevel(lvl)
	c.log.SetOutput(cmd.ErrOrStderr())

	switch c.logFormat {
	case logFormatText:
		c.log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case logFormatJSON:
		c.log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("--log-format: unknown format %q (want %s or %s)", c.logFormat, logFormatText, logFormatJSON)
	}

	return nil
}
