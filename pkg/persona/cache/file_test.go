package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staragent/staragent-go/pkg/persona"
)

func testPersona() *persona.Persona {
	return &persona.Persona{
		BasicInfo: persona.BasicInfo{
			Name:       "测试明星",
			Profession: "演员",
			Works:      []string{"作品一"},
		},
		PersonalityTraits: []string{"亲切", "真诚"},
		SpeakingStyle: persona.SpeakingStyle{
			Description:   "语气亲切自然，善于与粉丝交流",
			CommonPhrases: []string{"感谢大家"},
		},
		InterestsTopics:     []string{"表演"},
		ExperiencesOpinions: []string{"珍惜与粉丝之间的感情"},
		ValuesBeliefs:       []string{"真诚待人"},
	}
}

func TestFileCache_PutAndGet(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	ctx := context.Background()
	p := testPersona()
	require.NoError(t, c.Put(ctx, "测试明星", p))

	got, err := c.Get(ctx, "测试明星")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, got)
}

func TestFileCache_MissReturnsNilNil(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	got, err := c.Get(context.Background(), "不存在")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileCache_FileNaming(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	require.NoError(t, c.Put(context.Background(), "测试明星", testPersona()))

	_, err = os.Stat(filepath.Join(dir, "测试明星_persona.json"))
	assert.NoError(t, err)
}

func TestFileCache_PutOverwrites(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	require.NoError(t, err)

	ctx := context.Background()
	p := testPersona()
	require.NoError(t, c.Put(ctx, "测试明星", p))

	p2 := testPersona()
	p2.BasicInfo.Profession = "歌手"
	require.NoError(t, c.Put(ctx, "测试明星", p2))

	got, err := c.Get(ctx, "测试明星")
	require.NoError(t, err)
	assert.Equal(t, "歌手", got.BasicInfo.Profession)
}

func TestFileCache_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "personas")
	_, err := NewFileCache(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
