package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "赵丽颖", cfg.Celebrity)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "https://api.deepseek.com", cfg.LLM.BaseURL)
	assert.Equal(t, "sqlite", cfg.Store.Provider)
	assert.Equal(t, "./chat_memory.db", cfg.Store.SQLitePath)
	assert.Equal(t, "file", cfg.Cache.Provider)
	assert.Equal(t, "./personas", cfg.Cache.PersonaDir)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("CELEBRITY_NAME", "测试明星")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("STORE_PROVIDER", "postgres")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "6432")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("CACHE_PROVIDER", "redis")
	t.Setenv("REDIS_ADDR", "cache.internal:6379")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "测试明星", cfg.Celebrity)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "postgres", cfg.Store.Provider)
	assert.Equal(t, "db.internal", cfg.Store.Host)
	assert.Equal(t, 6432, cfg.Store.Port)
	assert.Equal(t, "secret", cfg.Store.Password)
	assert.Equal(t, "disable", cfg.Store.SSLMode)
	assert.Equal(t, "redis", cfg.Cache.Provider)
	assert.Equal(t, "cache.internal:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"celebrity": "测试明星",
		"llm": {"provider": "deepseek", "api_key": "sk-test"},
		"store": {"provider": "sqlite", "sqlite_path": "./test.db"},
		"cache": {"provider": "file", "persona_dir": "./personas"},
		"server": {"port": 9000}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFromJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "测试明星", cfg.Celebrity)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromJSON_MissingFile(t *testing.T) {
	_, err := LoadConfigFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{
		Celebrity: "测试明星",
		LLM:       LLMConfig{Provider: "deepseek", APIKey: "sk-test"},
		Store:     StoreConfig{Provider: "sqlite", SQLitePath: "./test.db"},
		Cache:     CacheConfig{Provider: "file", PersonaDir: "./personas"},
	}
	assert.NoError(t, valid.Validate())

	missingKey := *valid
	missingKey.LLM.APIKey = ""
	assert.ErrorIs(t, missingKey.Validate(), ErrInvalidConfig)

	missingCelebrity := *valid
	missingCelebrity.Celebrity = ""
	assert.ErrorIs(t, missingCelebrity.Validate(), ErrInvalidConfig)

	missingStore := *valid
	missingStore.Store.Provider = ""
	assert.ErrorIs(t, missingStore.Validate(), ErrInvalidConfig)
}

func TestAgentError(t *testing.T) {
	err := NewAgentError("Chat", ErrInvalidConfig)
	assert.Equal(t, "staragent: Chat: invalid configuration", err.Error())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	assert.Nil(t, NewAgentError("Chat", nil))
}
