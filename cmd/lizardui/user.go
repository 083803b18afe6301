package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lizardui/pkg/auth"
	"github.com/dmitrymomot/lizardui/pkg/db"
)

var errNoDatabase = errors.New("lizardui: database.url is not configured")

func newUserCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login accounts",
	}

	var (
		username string
		password string
		inactive bool
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user in the database",
		Long: `Creates a login account in the lizardui_users table. Missing username or
password flags are asked for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.settings(false)
			if err != nil {
				return err
			}
			var cfg db.Config
			if err := s.UnmarshalKey("database", &cfg); err != nil {
				return err
			}
			if cfg.URL == "" {
				return errNoDatabase
			}

			if err := promptCredentials(&username, &password); err != nil {
				return err
			}

			ctx := cmd.Context()
			log := g.logger(cmd.ErrOrStderr())
			pool, err := db.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool, auth.Migrations, cfg.MigrationsTable, log); err != nil {
				return err
			}
			id, err := auth.NewPostgres(pool).CreateUser(ctx, username, password, !inactive)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	create.Flags().StringVarP(&username, "username", "u", "", "login name")
	create.Flags().StringVarP(&password, "password", "p", "", "password (prompted when empty)")
	create.Flags().BoolVar(&inactive, "inactive", false, "create the account disabled")

	cmd.AddCommand(create)
	return cmd
}

func promptCredentials(username, password *string) error {
	var qs []*survey.Question
	if *username == "" {
		qs = append(qs, &survey.Question{
			Name:     "username",
			Prompt:   &survey.Input{Message: "Username:"},
			Validate: survey.Required,
		})
	}
	if *password == "" {
		qs = append(qs, &survey.Question{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password:"},
			Validate: survey.Required,
		})
	}
	if len(qs) == 0 {
		return nil
	}

	answers := struct {
		Username string `survey:"username"`
		Password string `survey:"password"`
	}{Username: *username, Password: *password}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}
	*username, *password = answers.Username, answers.Password
	return nil
}
