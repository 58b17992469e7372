package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sandevgo/bodai/internal/config"
	"github.com/sandevgo/bodai/internal/metrics"
	"github.com/sandevgo/bodai/internal/service/bot"
	"github.com/sandevgo/bodai/internal/service/command"
	"github.com/sandevgo/bodai/internal/service/dialog"
	"github.com/sandevgo/bodai/internal/service/knowledge"
	"github.com/sandevgo/bodai/internal/service/reply"
	"github.com/sandevgo/bodai/internal/storage/contextfile"
	"github.com/sandevgo/bodai/internal/storage/sqlite"
	"github.com/sandevgo/bodai/internal/transport/cli"
	"github.com/sandevgo/bodai/internal/transport/rest"
	"github.com/sandevgo/bodai/internal/transport/telegram"
	"github.com/sandevgo/bodai/pkg/log"
	"github.com/sandevgo/bodai/pkg/srv"
)

// app holds the components every entry point shares.
type app struct {
	cfg      *config.AppConfig
	memories *sqlite.MemoryRepo
	profile  *sqlite.ProfileRepo
	bot      *bot.Bot
	router   *command.Router
	registry *prometheus.Registry
	cleanup  srv.Service
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	memories := sqlite.NewMemoryRepo(db)
	profile := sqlite.NewProfileRepo(db)

	// 3. Knowledge base and lexicon
	kb, err := knowledge.Load(ctx, appCfg.GetKnowledgePath(), appCfg.GetLanguage())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load knowledge base")
	}
	lex, err := reply.LexiconFor(appCfg.GetLanguage())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to select lexicon")
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 5. Bot
	contextLog := dialog.NewLog(contextfile.NewFileStorage(appCfg.GetContextPath(), dialog.DefaultCapacity), dialog.DefaultCapacity)
	contextLog.Restore(ctx)

	selector := reply.NewSelector(lex, memories, profile, kb)
	b := bot.NewBot(selector, contextLog, metrics.MustNewMetrics(registry))

	logger.Info().
		Str("language", lex.Language).
		Int("knowledge", kb.Len()).
		Int("context", contextLog.Len()).
		Msg("bot ready")

	return &app{
		cfg:      appCfg,
		memories: memories,
		profile:  profile,
		bot:      b,
		router:   command.New(command.NewCommands(memories, profile, b)),
		registry: registry,
		cleanup:  srv.NewCleanup(db.Close),
	}
}

func NewServices(ctx context.Context, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)

	a := newApp(ctx)
	services := []srv.Service{a.cleanup}

	transports, err := initTransports(ctx, a, stop)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Warn().Msg("no transport enabled, set ENABLE_HTTP, ENABLE_TELEGRAM or ENABLE_CLI")
	}
	return append(services, transports...)
}

func initTransports(ctx context.Context, a *app, stop context.CancelFunc) ([]srv.Service, error) {
	var services []srv.Service

	if a.cfg.EnableHTTP {
		httpCfg := config.NewHTTPConfig(ctx)
		services = append(services, rest.NewServer(ctx, httpCfg, a.bot, a.memories, a.profile, a.registry))
	}

	if a.cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		tg, err := telegram.NewBot(ctx, tgCfg, a.bot, a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, tg)
	}

	if a.cfg.EnableCLI {
		repl, err := cli.NewReadLine(a.bot, a.router, a.cfg.GetRuntimePath(), stop)
		if err != nil {
			return nil, err
		}
		services = append(services, repl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
