package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/summarize-console/internal/domain/auth"
	"github.com/yanqian/summarize-console/internal/domain/page"
	"github.com/yanqian/summarize-console/internal/domain/summarize"
	"github.com/yanqian/summarize-console/internal/domain/trigger"
	"github.com/yanqian/summarize-console/internal/infra/config"
	"github.com/yanqian/summarize-console/internal/infra/elementstore"
)

func provideSummarizeConfig(cfg *config.Config) summarize.Config {
	return summarize.Config{BaseURL: cfg.Summarize.BaseURL}
}

func providePageConfig(cfg *config.Config) page.Config {
	return page.Config{
		InputElement:  cfg.Page.InputElement,
		OutputElement: cfg.Page.OutputElement,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Enabled:  cfg.Auth.Enabled,
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

// provideHTTPClient builds the transport for the summarize request. A zero
// timeout leaves requests unbounded.
func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Summarize.RequestTimeout}
}

func provideInputReader(store page.ElementStore, cfg page.Config) summarize.InputReader {
	return page.NewTextField(store, cfg.InputElement)
}

func provideOutputWriter(store page.ElementStore, cfg page.Config) summarize.OutputWriter {
	return page.NewTextField(store, cfg.OutputElement)
}

// provideTriggerSource registers the handler against the page's button.
func provideTriggerSource(cfg *config.Config, handler *summarize.Handler, logger *slog.Logger) *trigger.Source {
	source := trigger.NewSource(cfg.Page.TriggerName, logger)
	source.Register("summarize", handler.HandleTrigger)
	return source
}

func provideElementStore(cfg *config.Config, logger *slog.Logger) page.ElementStore {
	switch cfg.Store.Driver {
	case config.DriverValkey:
		if store := newValkeyStore(cfg, logger); store != nil {
			return store
		}
	case config.DriverPostgres:
		if store := newPostgresStore(cfg, logger); store != nil {
			return store
		}
	}
	logger.Info("using memory element store")
	return elementstore.NewMemoryStore()
}

func newValkeyStore(cfg *config.Config, logger *slog.Logger) page.ElementStore {
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return nil
	}
	logger.Info("valkey element store enabled", "addr", cfg.Store.Valkey.Addr)
	return elementstore.NewValkeyStore(client, cfg.Store.Valkey.Prefix)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Store.Valkey.Addr, "://") {
		return valkey.ParseURL(cfg.Store.Valkey.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Store.Valkey.Addr}}, nil
}

func newPostgresStore(cfg *config.Config, logger *slog.Logger) page.ElementStore {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.Store.Postgres.DSN))
	if err != nil {
		logger.Error("invalid postgres dsn, falling back to memory store", "error", err)
		return nil
	}
	if cfg.Store.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Store.Postgres.MaxConns
	}
	if cfg.Store.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Store.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, falling back to memory store", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, falling back to memory store", "error", err)
		pool.Close()
		return nil
	}
	store := elementstore.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		logger.Error("postgres migration failed, falling back to memory store", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres element store enabled")
	return store
}
