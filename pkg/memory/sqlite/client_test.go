package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staragent/staragent-go/pkg/memory"
	"github.com/staragent/staragent-go/pkg/memory/sqlite"
)

func setupStore(t *testing.T) memory.Store {
	t.Helper()

	store, err := sqlite.NewClient(&sqlite.Config{
		DBPath: filepath.Join(t.TempDir(), "chat_memory.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestClient_SaveAndGetHistory(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user1", "你好", "你好呀～", ""))
	require.NoError(t, store.Save(ctx, "user1", "最近忙吗", "在拍新戏呢", "这是第一次对话"))

	history, err := store.GetHistory(ctx, "user1", 5)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first.
	assert.Equal(t, "最近忙吗", history[0].UserMessage)
	assert.Equal(t, "在拍新戏呢", history[0].BotResponse)
	assert.Equal(t, "你好", history[1].UserMessage)
}

func TestClient_GetHistoryLimit(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, store.Save(ctx, "user1", "消息", "回复", ""))
	}

	history, err := store.GetHistory(ctx, "user1", 5)
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestClient_GetHistoryIsolatedPerUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user1", "一", "回一", ""))
	require.NoError(t, store.Save(ctx, "user2", "二", "回二", ""))

	history, err := store.GetHistory(ctx, "user1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "一", history[0].UserMessage)
}

func TestClient_GetHistoryEmpty(t *testing.T) {
	store := setupStore(t)

	history, err := store.GetHistory(context.Background(), "nobody", 5)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestClient_ProfileTracksInteractions(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	profile, err := store.GetProfile(ctx, "user1")
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, store.Save(ctx, "user1", "你好", "你好呀", ""))
	require.NoError(t, store.Save(ctx, "user1", "再见", "下次聊", ""))

	profile, err = store.GetProfile(ctx, "user1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "user1", profile.UserID)
	assert.Equal(t, 2, profile.TotalInteractions)
	assert.False(t, profile.LastInteraction.IsZero())
}

func TestClient_UpdateInterests(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user1", "你好", "你好呀", ""))
	require.NoError(t, store.UpdateInterests(ctx, "user1", []string{"电影", "音乐"}))

	profile, err := store.GetProfile(ctx, "user1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, []string{"电影", "音乐"}, profile.KnownInterests)
	// The interaction counter is untouched by an interests update.
	assert.Equal(t, 1, profile.TotalInteractions)
}

func TestClient_UpdateInterestsNewUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpdateInterests(ctx, "fresh", []string{"旅行"}))

	profile, err := store.GetProfile(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, []string{"旅行"}, profile.KnownInterests)
}

func TestClient_Summarize(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	summary, err := store.Summarize(ctx, "user1", 10)
	require.NoError(t, err)
	assert.Equal(t, memory.FirstConversationSummary, summary)

	require.NoError(t, store.Save(ctx, "user1", "你的新歌真好听", "谢谢支持～", ""))

	summary, err = store.Summarize(ctx, "user1", 10)
	require.NoError(t, err)
	assert.Equal(t, "最近聊过：音乐相关", summary)
}

func TestClient_SaveStoresContextSummary(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user1", "聊聊电影", "好呀", "最近聊过：作品相关"))

	history, err := store.GetHistory(ctx, "user1", 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
}
