package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains the complete configuration for a StarAgent application.
//
// It covers the impersonated celebrity, the LLM provider, the conversation
// store backend, the persona cache backend, and the HTTP server.
//
// Example:
//
//	config := &core.Config{
//	    Celebrity: "赵丽颖",
//	    LLM: core.LLMConfig{
//	        Provider: "deepseek",
//	        APIKey:   "sk-...",
//	    },
//	    Store: core.StoreConfig{
//	        Provider: "sqlite",
//	        SQLitePath: "./chat_memory.db",
//	    },
//	    Cache: core.CacheConfig{
//	        Provider:   "file",
//	        PersonaDir: "./personas",
//	    },
//	}
type Config struct {
	// Celebrity is the name of the impersonated figure.
	Celebrity string `json:"celebrity"`

	// LLM contains completion provider configuration.
	LLM LLMConfig `json:"llm"`

	// Store contains conversation store configuration.
	Store StoreConfig `json:"store"`

	// Cache contains persona cache configuration.
	Cache CacheConfig `json:"cache"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server"`
}

// LLMConfig contains configuration for the completion provider.
//
// Supported providers: deepseek, openai
type LLMConfig struct {
	// Provider is the completion provider name (deepseek, openai).
	Provider string `json:"provider"`

	// APIKey is the API key for the provider.
	APIKey string `json:"api_key"`

	// Model is the model name to use (optional, provider default if empty).
	Model string `json:"model,omitempty"`

	// BaseURL is the base URL for the API (optional, provider default if empty).
	BaseURL string `json:"base_url,omitempty"`
}

// StoreConfig contains configuration for the conversation store.
//
// Supported providers: sqlite, mysql, postgres
type StoreConfig struct {
	// Provider is the store backend name (sqlite, mysql, postgres).
	Provider string `json:"provider"`

	// SQLitePath is the database file path for the sqlite backend.
	SQLitePath string `json:"sqlite_path,omitempty"`

	// Host, Port, User, Password, DBName configure the mysql and postgres
	// backends.
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	DBName   string `json:"db_name,omitempty"`

	// SSLMode applies to the postgres backend only.
	SSLMode string `json:"ssl_mode,omitempty"`
}

// CacheConfig contains configuration for the persona cache.
//
// Supported providers: file, redis
type CacheConfig struct {
	// Provider is the cache backend name (file, redis).
	Provider string `json:"provider"`

	// PersonaDir is the directory for the file backend.
	PersonaDir string `json:"persona_dir,omitempty"`

	// RedisAddr, RedisPassword, RedisDB configure the redis backend.
	RedisAddr     string `json:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty"`

	// RedisTTL is the entry lifetime for the redis backend. Zero means no
	// expiry.
	RedisTTL time.Duration `json:"redis_ttl,omitempty"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// Port is the listen port.
	Port int `json:"port"`

	// LogMode selects the logger profile ("dev" or "prod").
	LogMode string `json:"log_mode,omitempty"`
}

// LoadConfigFromEnv loads configuration from environment variables.
//
// The function:
//  1. Searches for .env or .env.example files (up to 5 directory levels up)
//  2. Loads environment variables from the found file
//  3. Parses environment variables into a Config struct
//
// Supported environment variables:
//   - CELEBRITY_NAME
//   - LLM_PROVIDER, LLM_API_KEY, LLM_MODEL, LLM_BASE_URL
//   - STORE_PROVIDER (sqlite, mysql, postgres)
//   - SQLITE_PATH
//   - MYSQL_HOST, MYSQL_PORT, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE
//   - POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_PASSWORD,
//     POSTGRES_DATABASE, POSTGRES_SSLMODE
//   - CACHE_PROVIDER (file, redis), PERSONA_DIR
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_TTL_SECONDS
//   - PORT, LOG_MODE
func LoadConfigFromEnv() (*Config, error) {
	envPath, found := FindEnvFile()
	if found {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	storeProvider := getEnvOrDefault("STORE_PROVIDER", "sqlite")
	store := StoreConfig{Provider: storeProvider}
	switch storeProvider {
	case "mysql":
		port, _ := strconv.Atoi(getEnvOrDefault("MYSQL_PORT", "3306"))
		store.Host = getEnvOrDefault("MYSQL_HOST", "localhost")
		store.Port = port
		store.User = getEnvOrDefault("MYSQL_USER", "root")
		store.Password = os.Getenv("MYSQL_PASSWORD")
		store.DBName = getEnvOrDefault("MYSQL_DATABASE", "staragent")
	case "postgres":
		port, _ := strconv.Atoi(getEnvOrDefault("POSTGRES_PORT", "5432"))
		store.Host = getEnvOrDefault("POSTGRES_HOST", "localhost")
		store.Port = port
		store.User = getEnvOrDefault("POSTGRES_USER", "postgres")
		store.Password = os.Getenv("POSTGRES_PASSWORD")
		store.DBName = getEnvOrDefault("POSTGRES_DATABASE", "staragent")
		store.SSLMode = getEnvOrDefault("POSTGRES_SSLMODE", "disable")
	default:
		store.SQLitePath = getEnvOrDefault("SQLITE_PATH", "./chat_memory.db")
	}

	llmProvider := getEnvOrDefault("LLM_PROVIDER", "deepseek")
	var llmBaseURL string
	switch llmProvider {
	case "deepseek":
		llmBaseURL = getEnvOrDefault("LLM_BASE_URL", "https://api.deepseek.com")
	default:
		llmBaseURL = os.Getenv("LLM_BASE_URL")
	}

	cacheProvider := getEnvOrDefault("CACHE_PROVIDER", "file")
	cache := CacheConfig{Provider: cacheProvider}
	switch cacheProvider {
	case "redis":
		db, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
		ttlSeconds, _ := strconv.Atoi(getEnvOrDefault("REDIS_TTL_SECONDS", "0"))
		cache.RedisAddr = getEnvOrDefault("REDIS_ADDR", "localhost:6379")
		cache.RedisPassword = os.Getenv("REDIS_PASSWORD")
		cache.RedisDB = db
		cache.RedisTTL = time.Duration(ttlSeconds) * time.Second
	default:
		cache.PersonaDir = getEnvOrDefault("PERSONA_DIR", "./personas")
	}

	port, _ := strconv.Atoi(getEnvOrDefault("PORT", "5000"))

	config := &Config{
		Celebrity: getEnvOrDefault("CELEBRITY_NAME", "赵丽颖"),
		LLM: LLMConfig{
			Provider: llmProvider,
			APIKey:   os.Getenv("LLM_API_KEY"),
			Model:    os.Getenv("LLM_MODEL"),
			BaseURL:  llmBaseURL,
		},
		Store: store,
		Cache: cache,
		Server: ServerConfig{
			Port:    port,
			LogMode: getEnvOrDefault("LOG_MODE", "dev"),
		},
	}

	return config, nil
}

// LoadConfigFromEnvFile loads configuration from a specific .env file.
func LoadConfigFromEnvFile(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, NewAgentError("LoadConfigFromEnvFile", err)
	}
	return LoadConfigFromEnv()
}

// LoadConfigFromJSON loads configuration from a JSON file.
func LoadConfigFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewAgentError("LoadConfigFromJSON", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, NewAgentError("LoadConfigFromJSON", err)
	}

	return &config, nil
}

// Validate validates the configuration.
//
// Checks that all required fields are set:
//   - Celebrity name must be specified
//   - LLM provider and API key must be specified
//   - Store and cache providers must be specified
//
// Returns an error if validation fails, nil otherwise.
func (c *Config) Validate() error {
	if c.Celebrity == "" {
		return NewAgentError("Validate", ErrInvalidConfig)
	}
	if c.LLM.Provider == "" || c.LLM.APIKey == "" {
		return NewAgentError("Validate", ErrInvalidConfig)
	}
	if c.Store.Provider == "" {
		return NewAgentError("Validate", ErrInvalidConfig)
	}
	if c.Cache.Provider == "" {
		return NewAgentError("Validate", ErrInvalidConfig)
	}
	return nil
}

// getEnvOrDefault gets an environment variable or returns the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FindEnvFile searches for .env or .env.example files.
//
// The search:
//  1. Checks the current directory
//  2. Searches up to 5 directory levels up
//  3. Returns the first .env or .env.example file found
func FindEnvFile() (string, bool) {
	if _, err := os.Stat(".env"); err == nil {
		return ".env", true
	}
	if _, err := os.Stat(".env.example"); err == nil {
		return ".env.example", true
	}

	dir, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		envExamplePath := filepath.Join(dir, ".env.example")

		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		if _, err := os.Stat(envExamplePath); err == nil {
			return envExamplePath, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}
