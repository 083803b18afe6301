package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lizardui/pkg/configcheck"
	"github.com/dmitrymomot/lizardui/pkg/logger"
	"github.com/dmitrymomot/lizardui/pkg/settings"
)

func newConfigcheckCmd(g *globalFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "configcheck",
		Short: "Log every missing setting and required app",
		Long: `Runs the registered configuration checkers against the settings file.
Problems are logged as errors. With --strict the command fails when any
checker logged an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.settings(false)
			if err != nil {
				return err
			}
			log, counter := logger.NewCounter(g.logger(cmd.ErrOrStderr()))

			n := checkConfig(s, log)
			log.Info("configuration checked", slog.Int("checkers", n), slog.Int64("errors", counter.Errors()))

			if strict && counter.Errors() > 0 {
				return fmt.Errorf("%w: %d configuration errors", errReported, counter.Errors())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when a checker reports an error")
	return cmd
}

// checkConfig runs the built-in checker followed by any registered on
// configcheck.Default and returns how many ran.
func checkConfig(s *settings.Settings, log *slog.Logger) int {
	r := configcheck.New()
	configcheck.RegisterDefaults(r, s, log)
	for _, fn := range configcheck.Checkers() {
		r.Register(fn)
	}
	r.Run()
	return r.Len()
}
