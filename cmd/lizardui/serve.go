package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lizardui"
	"github.com/dmitrymomot/lizardui/handlers"
	"github.com/dmitrymomot/lizardui/middlewares"
	"github.com/dmitrymomot/lizardui/pkg/auth"
	"github.com/dmitrymomot/lizardui/pkg/db"
	"github.com/dmitrymomot/lizardui/pkg/logger"
	"github.com/dmitrymomot/lizardui/pkg/redis"
	"github.com/dmitrymomot/lizardui/pkg/session"
	"github.com/dmitrymomot/lizardui/pkg/settings"
	"github.com/dmitrymomot/lizardui/pkg/templates"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.settings(true)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = s.String("server.address")
			}
			log := g.logger(cmd.ErrOrStderr(),
				logger.WithExtractors(middlewares.RequestIDExtractor()),
				logger.WithSentry(logger.SentryConfig{
					DSN:         s.String("sentry.dsn"),
					Environment: s.String("sentry.environment"),
					MinLevel:    slog.LevelWarn,
				}),
			)
			checkConfig(s, log)
			return serve(cmd.Context(), s, addr, log)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from server.address or :8080)")
	return cmd
}

// backends are the stores serve picked, plus their lifecycle hooks.
type backends struct {
	auth     auth.Authenticator
	sessions session.Store
	health   []lizardui.HealthOption
	shutdown []lizardui.RunOption
	closers  []func(context.Context) error
}

func (b *backends) onShutdown(fn func(context.Context) error) {
	b.shutdown = append(b.shutdown, lizardui.ShutdownHook(fn))
	b.closers = append(b.closers, fn)
}

// close releases what was opened when startup fails before Run.
func (b *backends) close() {
	for _, fn := range b.closers {
		_ = fn(context.Background())
	}
}

func serve(ctx context.Context, s *settings.Settings, addr string, log *slog.Logger) error {
	engine, err := templates.New(
		templates.WithDir(s.String("templates.dir")),
		templates.WithGlobals(map[string]any{"STATIC_URL": s.String("STATIC_URL")}),
	)
	if err != nil {
		return err
	}

	b, err := openBackends(ctx, s, log)
	if err != nil {
		return err
	}

	opts := []lizardui.Option{
		lizardui.WithCustomLogger(log),
		lizardui.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
		lizardui.WithTemplates(engine),
		lizardui.WithSession(b.sessions,
			lizardui.WithSessionSecure(s.Bool("session.secure")),
			lizardui.WithSessionCookieName(s.String("session.cookie_name")),
		),
		lizardui.WithHealthChecks(b.health...),
		lizardui.WithHandlers(handlers.NewAccounts(b.auth), handlers.NewPages()),
	}
	if dir := s.String("static.dir"); dir != "" {
		opts = append(opts, lizardui.WithStaticFiles(s.String("STATIC_URL"), os.DirFS(dir), "."))
	}

	runOpts := append([]lizardui.RunOption{lizardui.WithContext(ctx)}, b.shutdown...)
	return lizardui.New(opts...).Run(addr, runOpts...)
}

// openBackends connects PostgreSQL and Redis when configured and falls back
// to in-memory stores otherwise.
func openBackends(ctx context.Context, s *settings.Settings, log *slog.Logger) (*backends, error) {
	b := &backends{}

	var dbCfg db.Config
	if err := s.UnmarshalKey("database", &dbCfg); err != nil {
		return nil, err
	}
	if dbCfg.URL != "" {
		pool, err := db.Connect(ctx, dbCfg)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, pool, auth.Migrations, dbCfg.MigrationsTable, log); err != nil {
			pool.Close()
			return nil, err
		}
		b.auth = auth.NewPostgres(pool)
		b.health = append(b.health, lizardui.WithReadinessCheck("postgres", db.Healthcheck(pool)))
		b.onShutdown(db.Shutdown(pool))
	} else {
		log.Warn("database.url not set, accounts live in memory and no user can log in")
		b.auth = auth.NewMemory()
	}

	var redisCfg redis.Config
	if err := s.UnmarshalKey("redis", &redisCfg); err != nil {
		return nil, err
	}
	if redisCfg.URL != "" {
		client, err := redis.Open(ctx, redisCfg)
		if err != nil {
			b.close()
			return nil, err
		}
		b.sessions = session.NewRedisStore(client)
		b.health = append(b.health, lizardui.WithReadinessCheck("redis", redis.Healthcheck(client)))
		b.onShutdown(redis.Shutdown(client))
	} else {
		b.sessions = session.NewMemoryStore()
	}

	return b, nil
}
