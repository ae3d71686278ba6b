package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProfession(t *testing.T) {
	assert.Equal(t, "演员", ExtractProfession([]string{"我是一名演员，热爱表演"}))
	assert.Equal(t, "歌手", ExtractProfession([]string{"作为歌手，我想唱好每一首歌"}))
	assert.Equal(t, "导演", ExtractProfession([]string{"第一次做导演，很紧张"}))
}

func TestExtractProfession_MarkerPriorityWithinPost(t *testing.T) {
	// 演员 outranks 歌手 when both appear in the same post.
	posts := []string{"既是歌手也是演员"}
	assert.Equal(t, "演员", ExtractProfession(posts))
}

func TestExtractProfession_FirstPostWins(t *testing.T) {
	posts := []string{"今天是歌手舞台", "也客串了演员"}
	assert.Equal(t, "歌手", ExtractProfession(posts))
}

func TestExtractProfession_Default(t *testing.T) {
	assert.Equal(t, "艺人", ExtractProfession([]string{"今天天气不错"}))
	assert.Equal(t, "艺人", ExtractProfession(nil))
}

func TestExtractPersonality_StrictThreshold(t *testing.T) {
	// 10 posts, exactly one mentioning 感谢: 1 > 1.0 is false, excluded.
	posts := make([]string, 10)
	for i := range posts {
		posts[i] = "平常的一天"
	}
	posts[0] = "感谢大家"

	traits := ExtractPersonality(posts)
	assert.NotContains(t, traits, "感恩")

	// Two matching posts cross the threshold.
	posts[1] = "谢谢你们"
	traits = ExtractPersonality(posts)
	assert.Contains(t, traits, "感恩")
}

func TestExtractPersonality_Defaults(t *testing.T) {
	traits := ExtractPersonality([]string{"无关内容"})
	assert.Equal(t, []string{"亲切", "真诚"}, traits)
}

func TestExtractPersonality_CategoryOrder(t *testing.T) {
	posts := []string{"今天很开心！", "感谢大家的支持", "继续保持乐观"}
	traits := ExtractPersonality(posts)
	assert.Equal(t, []string{"开朗", "感恩", "乐观"}, traits)
}

func TestAnalyzeSpeakingStyle_CommonPhrases(t *testing.T) {
	posts := []string{
		"感谢大家 感谢大家 感谢大家",
		"今天 拍摄 很顺利",
		"感谢大家 的支持",
	}
	style := AnalyzeSpeakingStyle(posts)

	assert.NotEmpty(t, style.CommonPhrases)
	// Most frequent token ranks first.
	assert.Equal(t, "感谢大家", style.CommonPhrases[0])
	assert.LessOrEqual(t, len(style.CommonPhrases), 10)
	// Single-character tokens are filtered out.
	for _, phrase := range style.CommonPhrases {
		assert.Greater(t, len([]rune(phrase)), 1)
	}
}

func TestAnalyzeSpeakingStyle_FrequencyTieBrokenByFirstAppearance(t *testing.T) {
	posts := []string{"苹果 香蕉", "香蕉 苹果"}
	style := AnalyzeSpeakingStyle(posts)
	assert.Equal(t, []string{"苹果", "香蕉"}, style.CommonPhrases)
}

func TestAnalyzeSpeakingStyle_SentencePatterns(t *testing.T) {
	posts := []string{
		"太棒了！",
		"今天心情不错～",
		"有点想家了...",
	}
	style := AnalyzeSpeakingStyle(posts)
	assert.Equal(t, []string{
		"喜欢用感叹号表达情感",
		"喜欢用波浪线显得亲切",
		"偶尔用省略号表达思考",
	}, style.SentencePatterns)
}

func TestAnalyzeSpeakingStyle_SentencePatternsDeduped(t *testing.T) {
	posts := []string{"好开心！", "真的很棒！", "加油！"}
	style := AnalyzeSpeakingStyle(posts)
	assert.Equal(t, []string{"喜欢用感叹号表达情感"}, style.SentencePatterns)
}

func TestAnalyzeSpeakingStyle_Description(t *testing.T) {
	posts := []string{"今天很开心！", "感谢大家"}
	style := AnalyzeSpeakingStyle(posts)
	assert.Equal(t, "语气通常积极向上，经常表达感谢，善于用感叹句加强情感表达", style.Description)
}

func TestAnalyzeSpeakingStyle_DefaultDescription(t *testing.T) {
	style := AnalyzeSpeakingStyle([]string{"普通的一条动态"})
	assert.Equal(t, "语气亲切自然，善于与粉丝交流", style.Description)
}

func TestAnalyzeSpeakingStyle_Deterministic(t *testing.T) {
	posts := []string{
		"感谢大家对我的支持，我会继续努力！",
		"今天拍摄很顺利，剧组氛围特别好～",
		"看到粉丝们的留言很感动",
	}
	first := AnalyzeSpeakingStyle(posts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AnalyzeSpeakingStyle(posts))
	}
}

func TestExtractInterests(t *testing.T) {
	posts := []string{"新专辑的音乐快做好了", "下周电影上映"}
	assert.Equal(t, []string{"音乐", "电影"}, ExtractInterests(posts))
}

func TestExtractInterests_Default(t *testing.T) {
	assert.Equal(t, []string{"表演", "艺术", "与粉丝互动"}, ExtractInterests(nil))
}

func TestExtractExperiences(t *testing.T) {
	posts := []string{"新剧开机啦"}
	interviews := []string{"每个角色都值得尊重", "粉丝是我的动力"}

	experiences := ExtractExperiences(posts, interviews)
	assert.Equal(t, []string{
		"经常在社交媒体分享工作进展",
		"重视每一个扮演的角色",
		"珍惜与粉丝之间的感情",
	}, experiences)
}

func TestExtractExperiences_OnlyFirstThreeInterviews(t *testing.T) {
	interviews := []string{"聊聊日常", "谈谈生活", "说说工作", "我的梦想是演戏"}
	experiences := ExtractExperiences(nil, interviews)
	// The fourth interview is out of scope, so defaults apply.
	assert.Equal(t, []string{
		"重视表演艺术的追求",
		"感恩粉丝一直以来的支持",
		"努力在演艺道路上不断进步",
	}, experiences)
}

func TestExtractValues(t *testing.T) {
	posts := []string{"一直努力坚持"}
	interviews := []string{"保持乐观的心态"}
	assert.Equal(t, []string{"努力", "乐观"}, ExtractValues(posts, interviews))
}

func TestExtractValues_Default(t *testing.T) {
	values := ExtractValues(nil, nil)
	assert.Equal(t, []string{"真诚待人", "努力进取", "感恩生活"}, values)
}
