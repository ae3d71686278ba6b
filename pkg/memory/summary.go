package memory

import "strings"

// FirstConversationSummary is returned when a user has no stored history.
const FirstConversationSummary = "这是第一次对话"

// topicBuckets maps summary labels to the keywords that signal them.
// Buckets are checked in order and each message lands in at most one.
var topicBuckets = []struct {
	Label    string
	Keywords []string
}{
	{Label: "作品相关", Keywords: []string{"电影", "电视剧", "作品"}},
	{Label: "日常生活", Keywords: []string{"生活", "日常", "今天"}},
	{Label: "音乐相关", Keywords: []string{"音乐", "歌", "演唱会"}},
}

// SummarizeHistory buckets the user messages of the given exchanges into the
// fixed topic set and joins the distinct topic labels into a summary line.
//
// This is a pure helper shared by all store backends.
func SummarizeHistory(pairs []HistoryPair) string {
	if len(pairs) == 0 {
		return FirstConversationSummary
	}

	var topics []string
	for _, pair := range pairs {
		for _, bucket := range topicBuckets {
			if messageMatches(pair.UserMessage, bucket.Keywords) {
				topics = append(topics, bucket.Label)
				break
			}
		}
	}

	seen := make(map[string]bool)
	var unique []string
	for _, topic := range topics {
		if !seen[topic] {
			seen[topic] = true
			unique = append(unique, topic)
		}
	}

	if len(unique) == 0 {
		return "对话内容多样"
	}
	return "最近聊过：" + strings.Join(unique, ", ")
}

func messageMatches(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
