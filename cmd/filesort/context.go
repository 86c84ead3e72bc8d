package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"filesort/internal/config"
	"filesort/internal/logging"
	"filesort/internal/notifications"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
	verbose   bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// newLogger builds the structured logger for a command. Console output goes to
// stderr only with --verbose; a configured log file always receives records.
func (c *commandContext) newLogger(stderr io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	w := io.Discard
	if c.flags.verbose {
		w = stderr
	}
	return logging.NewFromConfig(cfg, w)
}

// reportedError marks an error that was already shown to the user as a notice.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// report publishes err as a notice on stdout and marks it as shown.
func report(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var already *reportedError
	if errors.As(err, &already) {
		return err
	}
	svc := notifications.NewService(cmd.OutOrStdout())
	_ = svc.Publish(cmd.Context(), notifications.FromError(err))
	return &reportedError{err: err}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
