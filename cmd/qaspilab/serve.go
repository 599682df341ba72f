package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qaspilab/qaspilab/internal/api"
	"github.com/qaspilab/qaspilab/internal/config"
	"github.com/qaspilab/qaspilab/internal/database"
	"github.com/qaspilab/qaspilab/internal/dedupe"
	"github.com/qaspilab/qaspilab/internal/metrics"
	"github.com/qaspilab/qaspilab/internal/middleware"
	"github.com/qaspilab/qaspilab/internal/notify"
	"github.com/qaspilab/qaspilab/internal/repository"
	"github.com/qaspilab/qaspilab/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var _ service.IdeaStore = (*repository.IdeaRepository)(nil)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the idea submission API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL connection URL; ideas are not stored when empty",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.BoolFlag{
				Name:    "migrate",
				Usage:   "Apply pending migrations on startup",
				EnvVars: []string{"AUTO_MIGRATE"},
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Value:   config.DefaultRedisURL,
				Usage:   "Redis URL for duplicate suppression; process memory when empty",
				EnvVars: []string{"REDIS_URL"},
			},
			&cli.DurationFlag{
				Name:    "dedupe-ttl",
				Value:   config.DefaultDedupeTTL,
				Usage:   "How long an identical idea is rejected as a duplicate",
				EnvVars: []string{"DEDUPE_TTL"},
			},
			&cli.StringFlag{
				Name:    "green-api-url",
				Value:   config.DefaultGreenAPIURL,
				Usage:   "Green API host",
				EnvVars: []string{"GREEN_API_URL"},
			},
			&cli.StringFlag{
				Name:    "green-api-instance",
				Usage:   "Green API instance id",
				EnvVars: []string{"GREEN_API_INSTANCE_ID"},
			},
			&cli.StringFlag{
				Name:    "green-api-token",
				Usage:   "Green API instance token",
				EnvVars: []string{"GREEN_API_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "whatsapp-chat",
				Usage:   "WhatsApp chat id ideas are sent to",
				EnvVars: []string{"WHATSAPP_CHAT_ID"},
			},
			&cli.StringFlag{
				Name:    "telegram-token",
				Usage:   "Telegram bot token",
				EnvVars: []string{"TELEGRAM_BOT_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "telegram-chat",
				Usage:   "Telegram chat id or @channel ideas are sent to",
				EnvVars: []string{"TELEGRAM_CHAT_ID"},
			},
			&cli.DurationFlag{
				Name:    "notify-timeout",
				Value:   config.DefaultNotifyTimeout,
				Usage:   "Timeout of a single notifier call",
				EnvVars: []string{"NOTIFY_TIMEOUT"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Value:   config.DefaultRateLimit,
				Usage:   "Submissions per minute per IP address",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.StringSliceFlag{
				Name:    "cors-origin",
				Usage:   "Origin allowed to call the API (repeatable)",
				EnvVars: []string{"CORS_ORIGINS"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	site, err := loadSite(c)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}

	m := metrics.New()
	var checks []api.Option
	opts := []service.IdeaServiceOption{
		service.WithNotifyTimeout(c.Duration("notify-timeout")),
	}

	if url := c.String("database-url"); url != "" {
		pool, err := openStore(ctx, url, c.Bool("migrate"))
		if err != nil {
			return err
		}
		defer pool.Close()

		repo, err := repository.NewIdeaRepository(pool)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithStore(repo))
		checks = append(checks, api.WithHealthCheck("postgres", pool.Ping))
	} else {
		slog.Warn("no database configured, ideas are only forwarded")
	}

	guard, closeGuard, check, err := openGuard(ctx, c.String("redis-url"), c.Duration("dedupe-ttl"))
	if err != nil {
		return err
	}
	defer closeGuard()
	opts = append(opts, service.WithDuplicateGuard(guard))
	if check != nil {
		checks = append(checks, api.WithHealthCheck("redis", check))
	}

	notifiers, err := buildNotifiers(c, site)
	if err != nil {
		return err
	}
	for _, n := range notifiers {
		opts = append(opts, service.WithNotifiers(m.InstrumentNotifier(n)))
	}

	ideas, err := service.NewIdeaService(site, opts...)
	if err != nil {
		return fmt.Errorf("failed to create idea service: %w", err)
	}

	h, err := api.New(ideas, site, checks...)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", m.Handler())

	limiter, err := middleware.NewRateLimiter(c.Int("rate-limit"),
		middleware.WithLimitedPaths(config.SubmitIdeaPath),
	)
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer limiter.Close()

	var handler http.Handler = mux
	handler = middleware.CacheControl(handler)
	handler = limiter.Middleware(handler)
	handler = middleware.CORS(c.StringSlice("cors-origin"))(handler)
	handler = m.Middleware(handler)

	port := c.String("port")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

func openStore(ctx context.Context, url string, migrate bool) (*pgxpool.Pool, error) {
	pool, err := database.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		slog.Info("database migrated")
	}
	return pool, nil
}

// openGuard picks the redis guard when a URL is set and the in-memory one otherwise.
func openGuard(ctx context.Context, url string, ttl time.Duration) (service.DuplicateGuard, func(), api.HealthCheck, error) {
	if url == "" {
		g, err := dedupe.NewMemoryGuard(ttl)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create duplicate guard: %w", err)
		}
		return g, g.Close, nil, nil
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	g, err := dedupe.NewRedisGuard(client, ttl)
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, fmt.Errorf("failed to create duplicate guard: %w", err)
	}
	closeFn := func() { _ = client.Close() }
	check := func(ctx context.Context) error { return client.Ping(ctx).Err() }
	return g, closeFn, check, nil
}

// buildNotifiers configures every channel with complete settings.
// Ideas go to the log when no channel is configured.
func buildNotifiers(c *cli.Context, site *config.Site) ([]service.Notifier, error) {
	loc := site.Location()
	var notifiers []service.Notifier

	if c.String("green-api-instance") != "" || c.String("green-api-token") != "" {
		wa, err := notify.NewWhatsAppNotifier(notify.WhatsAppConfig{
			APIURL:     c.String("green-api-url"),
			InstanceID: c.String("green-api-instance"),
			Token:      c.String("green-api-token"),
			ChatID:     c.String("whatsapp-chat"),
		}, loc, &http.Client{})
		if err != nil {
			return nil, fmt.Errorf("failed to configure whatsapp: %w", err)
		}
		notifiers = append(notifiers, wa)
	}

	if token := c.String("telegram-token"); token != "" {
		b, err := notify.NewTelegramBot(token)
		if err != nil {
			return nil, err
		}
		tg, err := notify.NewTelegramNotifier(b, c.String("telegram-chat"), loc)
		if err != nil {
			return nil, fmt.Errorf("failed to configure telegram: %w", err)
		}
		notifiers = append(notifiers, tg)
	}

	if len(notifiers) == 0 {
		slog.Warn("no chat channel configured, ideas are written to the log")
		notifiers = append(notifiers, notify.NewLogNotifier(slog.Default()))
	}
	return notifiers, nil
}
