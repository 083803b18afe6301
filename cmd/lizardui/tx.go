package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lizardui/pkg/tx"
)

func newTxCmd(g *globalFlags) *cobra.Command {
	var traceback bool

	cmd := &cobra.Command{
		Use:   "tx <command> [args...]",
		Short: "Run a Transifex client command in the project root",
		Long: "Passes one of " + strings.Join(tx.Commands, ", ") + ` to the tx client,
running it in the nearest directory that contains .tx.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := g.logger(cmd.ErrOrStderr())
			err := tx.Run(cmd.Context(), args, tx.Options{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: log,
			})
			if err == nil {
				return nil
			}
			if traceback {
				log.Error("tx failed", "command", args[0], "error", err)
			} else {
				log.Error("tx failed", "command", args[0], "error", lastLine(err.Error()))
			}
			return errReported
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&traceback, "traceback", false, "log the full error chain")
	return cmd
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
