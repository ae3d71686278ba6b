package persona

import (
	"regexp"
	"sort"
	"strings"
)

// keywordCategory pairs a category label with the keywords that signal it.
type keywordCategory struct {
	Label    string
	Keywords []string
}

// Category tables. Declaration order fixes extraction order, which keeps
// every extractor deterministic for identical input.
var (
	professionMarkers = []string{"演员", "歌手", "导演"}

	personalityCategories = []keywordCategory{
		{Label: "开朗", Keywords: []string{"开心", "快乐", "高兴", "笑", "幸福"}},
		{Label: "真诚", Keywords: []string{"真心", "真诚", "真实", "坦诚"}},
		{Label: "努力", Keywords: []string{"努力", "奋斗", "坚持", "加油"}},
		{Label: "感恩", Keywords: []string{"感谢", "感恩", "感激", "谢谢"}},
		{Label: "乐观", Keywords: []string{"乐观", "积极", "正能量", "阳光"}},
	}

	interestCategories = []keywordCategory{
		{Label: "音乐", Keywords: []string{"歌", "音乐", "演唱会", "专辑"}},
		{Label: "电影", Keywords: []string{"电影", "电视剧", "剧集", "拍摄"}},
		{Label: "旅行", Keywords: []string{"旅行", "旅游", "风景", "地方"}},
		{Label: "美食", Keywords: []string{"美食", "好吃", "餐厅", "食物"}},
		{Label: "运动", Keywords: []string{"运动", "健身", "跑步", "锻炼"}},
	}

	valueCategories = []keywordCategory{
		{Label: "真诚", Keywords: []string{"真诚", "真实", "真心"}},
		{Label: "努力", Keywords: []string{"努力", "坚持", "奋斗"}},
		{Label: "感恩", Keywords: []string{"感恩", "感谢", "感激"}},
		{Label: "乐观", Keywords: []string{"乐观", "积极", "正能量"}},
	}
)

// Fallback defaults, used whenever no category crosses its threshold.
var (
	defaultProfession  = "艺人"
	defaultTraits      = []string{"亲切", "真诚"}
	defaultInterests   = []string{"表演", "艺术", "与粉丝互动"}
	defaultValues      = []string{"真诚待人", "努力进取", "感恩生活"}
	defaultExperiences = []string{
		"重视表演艺术的追求",
		"感恩粉丝一直以来的支持",
		"努力在演艺道路上不断进步",
	}
	defaultStyleDescription = "语气亲切自然，善于与粉丝交流"
)

// cjkWords matches maximal runs of CJK-range characters, treated as
// word-like tokens.
var cjkWords = regexp.MustCompile(`[\x{4e00}-\x{9fff}]+`)

// containsAny reports whether text contains at least one of the keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// countMatches counts how many texts contain at least one category keyword.
func countMatches(texts []string, keywords []string) int {
	count := 0
	for _, text := range texts {
		if containsAny(text, keywords) {
			count++
		}
	}
	return count
}

// matchCategories returns the labels of all categories signalled by at least
// one text, in table declaration order.
func matchCategories(texts []string, categories []keywordCategory) []string {
	var labels []string
	for _, cat := range categories {
		if countMatches(texts, cat.Keywords) > 0 {
			labels = append(labels, cat.Label)
		}
	}
	return labels
}

// ExtractProfession scans posts for profession markers. Within each post the
// markers are checked in priority order and the first hit wins; when no post
// carries a marker the generic performer label is returned.
func ExtractProfession(posts []string) string {
	for _, post := range posts {
		for _, marker := range professionMarkers {
			if strings.Contains(post, marker) {
				return marker
			}
		}
	}
	return defaultProfession
}

// ExtractPersonality derives personality trait labels from posts.
//
// A trait is included when the number of posts containing one of its
// keywords is strictly greater than 10% of the total post count. The strict
// comparison is intentional: with exactly 10 posts a single match does not
// qualify, two do.
func ExtractPersonality(posts []string) []string {
	var traits []string
	for _, cat := range personalityCategories {
		count := countMatches(posts, cat.Keywords)
		if float64(count) > float64(len(posts))*0.1 {
			traits = append(traits, cat.Label)
		}
	}
	if len(traits) == 0 {
		return append([]string(nil), defaultTraits...)
	}
	return traits
}

// AnalyzeSpeakingStyle derives the persona's speaking style from posts.
//
// Common phrases are the CJK tokens ranked in the top 20 by frequency that
// are longer than one character, most frequent first, capped at 10. Frequency
// ties are broken by first appearance so the result is stable. Sentence
// patterns come from punctuation habits in the first 10 posts; the overall
// description concatenates up to three emotion-signal clauses.
func AnalyzeSpeakingStyle(posts []string) SpeakingStyle {
	style := SpeakingStyle{
		CommonPhrases:    commonPhrases(posts),
		SentencePatterns: sentencePatterns(posts),
	}

	var parts []string
	if anyPostContains(posts, "开心", "高兴") {
		parts = append(parts, "语气通常积极向上")
	}
	if anyPostContains(posts, "感谢", "谢谢") {
		parts = append(parts, "经常表达感谢")
	}
	if anyPostContains(posts, "！") {
		parts = append(parts, "善于用感叹句加强情感表达")
	}
	if len(parts) == 0 {
		style.Description = defaultStyleDescription
	} else {
		style.Description = strings.Join(parts, "，")
	}

	return style
}

func anyPostContains(posts []string, substrings ...string) bool {
	for _, post := range posts {
		for _, sub := range substrings {
			if strings.Contains(post, sub) {
				return true
			}
		}
	}
	return false
}

func commonPhrases(posts []string) []string {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, post := range posts {
		for _, word := range cjkWords.FindAllString(post, -1) {
			if _, seen := freq[word]; !seen {
				firstSeen[word] = len(order)
				order = append(order, word)
			}
			freq[word]++
		}
	}

	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] > freq[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	// Length filter applies after the top-20 rank cut.
	if len(ranked) > 20 {
		ranked = ranked[:20]
	}

	var phrases []string
	for _, word := range ranked {
		if len([]rune(word)) > 1 {
			phrases = append(phrases, word)
		}
		if len(phrases) == 10 {
			break
		}
	}
	return phrases
}

func sentencePatterns(posts []string) []string {
	scan := posts
	if len(scan) > 10 {
		scan = scan[:10]
	}

	var patterns []string
	for _, post := range scan {
		if strings.Contains(post, "！") {
			patterns = append(patterns, "喜欢用感叹号表达情感")
		}
		if strings.Contains(post, "～") {
			patterns = append(patterns, "喜欢用波浪线显得亲切")
		}
		if strings.Contains(post, "...") || strings.Contains(post, "。。。") {
			patterns = append(patterns, "偶尔用省略号表达思考")
		}
	}

	// Dedupe preserving first occurrence, cap at 5.
	seen := make(map[string]bool)
	var unique []string
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
		if len(unique) == 5 {
			break
		}
	}
	return unique
}

// ExtractInterests derives interest topic labels from posts, falling back
// to the default set when no category matches.
func ExtractInterests(posts []string) []string {
	interests := matchCategories(posts, interestCategories)
	if len(interests) == 0 {
		return append([]string(nil), defaultInterests...)
	}
	return interests
}

// ExtractExperiences derives short narrative experience/opinion strings from
// posts and up to the first 3 interview quotes.
func ExtractExperiences(posts, interviews []string) []string {
	var experiences []string

	for _, post := range posts {
		if containsAny(post, []string{"新剧", "新电影", "新专辑"}) {
			experiences = append(experiences, "经常在社交媒体分享工作进展")
			break
		}
	}

	scan := interviews
	if len(scan) > 3 {
		scan = scan[:3]
	}
	for _, interview := range scan {
		if strings.Contains(interview, "角色") {
			experiences = append(experiences, "重视每一个扮演的角色")
		}
		if strings.Contains(interview, "粉丝") {
			experiences = append(experiences, "珍惜与粉丝之间的感情")
		}
		if strings.Contains(interview, "梦想") {
			experiences = append(experiences, "坚持追求艺术梦想")
		}
	}

	if len(experiences) == 0 {
		return append([]string(nil), defaultExperiences...)
	}
	return experiences
}

// ExtractValues derives value/belief labels from posts and interviews
// combined, falling back to the default set when no category matches.
func ExtractValues(posts, interviews []string) []string {
	allText := make([]string, 0, len(posts)+len(interviews))
	allText = append(allText, posts...)
	allText = append(allText, interviews...)

	values := matchCategories(allText, valueCategories)
	if len(values) == 0 {
		return append([]string(nil), defaultValues...)
	}
	return values
}
