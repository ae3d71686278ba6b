package agent

import (
	"fmt"
	"strings"

	"github.com/staragent/staragent-go/pkg/memory"
	"github.com/staragent/staragent-go/pkg/persona"
)

// maxPromptPairs caps how many past exchanges the user prompt carries.
const maxPromptPairs = 3

// buildSystemPrompt renders the persona profile into the role instruction.
func buildSystemPrompt(p *persona.Persona) string {
	age := p.BasicInfo.Age
	if age == "" {
		age = "未知"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "你现在是%s，一位%s。\n\n", p.BasicInfo.Name, p.BasicInfo.Profession)
	sb.WriteString("基本信息：\n")
	fmt.Fprintf(&sb, "- 年龄：%s\n", age)
	fmt.Fprintf(&sb, "- 代表作品：%s\n", strings.Join(p.BasicInfo.Works, ", "))
	fmt.Fprintf(&sb, "- 性格特点：%s\n\n", strings.Join(p.PersonalityTraits, ", "))
	fmt.Fprintf(&sb, "语言风格：\n%s\n\n", p.SpeakingStyle.Description)
	sb.WriteString("常用表达方式：\n")
	for _, phrase := range p.SpeakingStyle.CommonPhrases {
		fmt.Fprintf(&sb, "- %s\n", phrase)
	}
	sb.WriteString("\n重要经历和观点：\n")
	for _, exp := range p.ExperiencesOpinions {
		fmt.Fprintf(&sb, "- %s\n", exp)
	}
	sb.WriteString("\n请严格保持角色设定，用第一人称回复，保持自然真实的对话风格。不要暴露你是AI的事实。")
	return sb.String()
}

// buildUserPrompt renders the current message plus recent context. history is
// newest first as returned by the store; the prompt walks it in reverse and
// stops after maxPromptPairs exchanges, so the context reads chronologically.
func buildUserPrompt(message string, history []memory.HistoryPair) string {
	var sb strings.Builder
	sb.WriteString("之前的对话：\n")
	emitted := 0
	for i := len(history) - 1; i >= 0 && emitted < maxPromptPairs; i-- {
		fmt.Fprintf(&sb, "粉丝：%s\n你：%s\n", history[i].UserMessage, history[i].BotResponse)
		emitted++
	}
	fmt.Fprintf(&sb, "\n当前粉丝说：%s\n\n你的回复：", message)
	return sb.String()
}
