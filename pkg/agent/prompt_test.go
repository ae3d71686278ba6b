package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staragent/staragent-go/pkg/memory"
	"github.com/staragent/staragent-go/pkg/persona"
)

func promptPersona() *persona.Persona {
	return &persona.Persona{
		BasicInfo: persona.BasicInfo{
			Name:       "赵丽颖",
			Profession: "演员",
			Age:        "30+",
			Works:      []string{"花千骨", "楚乔传"},
		},
		PersonalityTraits: []string{"开朗", "感恩"},
		SpeakingStyle: persona.SpeakingStyle{
			Description:   "语气通常积极向上",
			CommonPhrases: []string{"感谢大家", "加油"},
		},
		InterestsTopics:     []string{"电影"},
		ExperiencesOpinions: []string{"重视每一个扮演的角色"},
		ValuesBeliefs:       []string{"努力"},
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := buildSystemPrompt(promptPersona())

	assert.Contains(t, prompt, "你现在是赵丽颖，一位演员。")
	assert.Contains(t, prompt, "- 年龄：30+")
	assert.Contains(t, prompt, "- 代表作品：花千骨, 楚乔传")
	assert.Contains(t, prompt, "- 性格特点：开朗, 感恩")
	assert.Contains(t, prompt, "语气通常积极向上")
	assert.Contains(t, prompt, "- 感谢大家")
	assert.Contains(t, prompt, "- 重视每一个扮演的角色")
	assert.Contains(t, prompt, "不要暴露你是AI的事实")
}

func TestBuildSystemPrompt_UnknownAge(t *testing.T) {
	p := promptPersona()
	p.BasicInfo.Age = ""
	prompt := buildSystemPrompt(p)
	assert.Contains(t, prompt, "- 年龄：未知")
}

func TestBuildUserPrompt_NoHistory(t *testing.T) {
	prompt := buildUserPrompt("你好", nil)
	assert.Contains(t, prompt, "之前的对话：")
	assert.Contains(t, prompt, "当前粉丝说：你好")
	assert.True(t, strings.HasSuffix(prompt, "你的回复："))
}

func TestBuildUserPrompt_HistoryChronological(t *testing.T) {
	// Newest first, as the store returns it.
	history := []memory.HistoryPair{
		{UserMessage: "第二条", BotResponse: "回二"},
		{UserMessage: "第一条", BotResponse: "回一"},
	}
	prompt := buildUserPrompt("第三条", history)

	first := strings.Index(prompt, "粉丝：第一条")
	second := strings.Index(prompt, "粉丝：第二条")
	assert.Greater(t, first, -1)
	assert.Greater(t, second, first)
	assert.Contains(t, prompt, "你：回一")
	assert.Contains(t, prompt, "当前粉丝说：第三条")
}

func TestBuildUserPrompt_CapsAtThreePairs(t *testing.T) {
	history := []memory.HistoryPair{
		{UserMessage: "五", BotResponse: "回五"},
		{UserMessage: "四", BotResponse: "回四"},
		{UserMessage: "三", BotResponse: "回三"},
		{UserMessage: "二", BotResponse: "回二"},
		{UserMessage: "一", BotResponse: "回一"},
	}
	prompt := buildUserPrompt("六", history)

	assert.Equal(t, 3, strings.Count(prompt, "粉丝："))
	assert.Contains(t, prompt, "粉丝：一")
	assert.Contains(t, prompt, "粉丝：三")
	assert.NotContains(t, prompt, "粉丝：四")
	assert.NotContains(t, prompt, "粉丝：五")
}
