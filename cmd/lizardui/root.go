package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lizardui/pkg/logger"
	"github.com/dmitrymomot/lizardui/pkg/settings"
)

var version = "dev"

// errReported marks failures that were already logged.
var errReported = errors.New("lizardui: command failed")

type globalFlags struct {
	settingsFile string
	logLevel     string
	logFormat    string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "lizardui",
		Short:         "Lizard UI server and maintenance commands",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&g.settingsFile, "settings", "s", "", "settings file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(
		newServeCmd(g),
		newConfigcheckCmd(g),
		newSettingsCmd(g),
		newUserCmd(g),
		newTxCmd(g),
	)
	return cmd
}

func (g *globalFlags) logger(w io.Writer, extra ...logger.Option) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithFormat(logger.Format(g.logFormat)),
		logger.WithLevel(logger.ParseLevel(g.logLevel)),
	}
	return logger.New(append(opts, extra...)...)
}

func (g *globalFlags) settings(withDefaults bool) (*settings.Settings, error) {
	opts := []settings.Option{settings.WithFile(g.settingsFile)}
	if withDefaults {
		opts = append(opts, settings.WithDefaults())
	}
	return settings.Load(opts...)
}
