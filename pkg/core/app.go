package core

import (
	"context"
	"fmt"

	"github.com/staragent/staragent-go/pkg/agent"
	"github.com/staragent/staragent-go/pkg/llm"
	"github.com/staragent/staragent-go/pkg/llm/deepseek"
	llmopenai "github.com/staragent/staragent-go/pkg/llm/openai"
	"github.com/staragent/staragent-go/pkg/logger"
	"github.com/staragent/staragent-go/pkg/memory"
	"github.com/staragent/staragent-go/pkg/memory/mysql"
	"github.com/staragent/staragent-go/pkg/memory/postgres"
	"github.com/staragent/staragent-go/pkg/memory/sqlite"
	"github.com/staragent/staragent-go/pkg/persona/cache"
	"github.com/staragent/staragent-go/pkg/scraper"
)

// App holds the wired application components.
//
// Create one with NewApp and release its resources with Close. There are no
// package-level singletons; everything hangs off the App.
type App struct {
	Config *Config
	Log    *logger.Logger
	Agent  *agent.Agent

	store memory.Store
	llm   llm.Provider
	cache cache.Cache
}

// NewApp wires an application from the configuration.
//
// Components are constructed in dependency order: store, completion
// provider, persona cache, then the agent. A failure at any step closes the
// components already opened.
func NewApp(ctx context.Context, cfg *Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := initStore(cfg)
	if err != nil {
		return nil, NewAgentError("NewApp", err)
	}

	provider, err := initLLM(cfg)
	if err != nil {
		_ = store.Close()
		return nil, NewAgentError("NewApp", err)
	}

	personaCache, err := initCache(cfg)
	if err != nil {
		_ = store.Close()
		_ = provider.Close()
		return nil, NewAgentError("NewApp", err)
	}

	ag, err := agent.New(ctx, cfg.Celebrity, scraper.NewCanned(), personaCache, store, provider, log)
	if err != nil {
		_ = store.Close()
		_ = provider.Close()
		_ = personaCache.Close()
		return nil, NewAgentError("NewApp", err)
	}

	return &App{
		Config: cfg,
		Log:    log,
		Agent:  ag,
		store:  store,
		llm:    provider,
		cache:  personaCache,
	}, nil
}

// Store returns the conversation store.
func (a *App) Store() memory.Store {
	return a.store
}

// Close releases all backend connections.
func (a *App) Close() error {
	var firstErr error
	if err := a.cache.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.llm.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.store.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// initStore creates the conversation store backend based on configuration.
func initStore(cfg *Config) (memory.Store, error) {
	switch cfg.Store.Provider {
	case "sqlite":
		return sqlite.NewClient(&sqlite.Config{
			DBPath: cfg.Store.SQLitePath,
		})
	case "mysql":
		return mysql.NewClient(&mysql.Config{
			Host:     cfg.Store.Host,
			Port:     cfg.Store.Port,
			User:     cfg.Store.User,
			Password: cfg.Store.Password,
			DBName:   cfg.Store.DBName,
		})
	case "postgres":
		return postgres.NewClient(&postgres.Config{
			Host:     cfg.Store.Host,
			Port:     cfg.Store.Port,
			User:     cfg.Store.User,
			Password: cfg.Store.Password,
			DBName:   cfg.Store.DBName,
			SSLMode:  cfg.Store.SSLMode,
		})
	default:
		return nil, fmt.Errorf("%w: store %q", ErrUnknownProvider, cfg.Store.Provider)
	}
}

// initLLM creates the completion provider based on configuration.
func initLLM(cfg *Config) (llm.Provider, error) {
	switch cfg.LLM.Provider {
	case "deepseek":
		return deepseek.NewClient(&deepseek.Config{
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.BaseURL,
		})
	case "openai":
		return llmopenai.NewClient(&llmopenai.Config{
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			BaseURL: cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("%w: llm %q", ErrUnknownProvider, cfg.LLM.Provider)
	}
}

// initCache creates the persona cache backend based on configuration.
func initCache(cfg *Config) (cache.Cache, error) {
	switch cfg.Cache.Provider {
	case "file":
		return cache.NewFileCache(cfg.Cache.PersonaDir)
	case "redis":
		return cache.NewRedisCache(&cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      cfg.Cache.RedisTTL,
		})
	default:
		return nil, fmt.Errorf("%w: cache %q", ErrUnknownProvider, cfg.Cache.Provider)
	}
}
