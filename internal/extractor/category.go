package extractor

import (
	"strings"

	"fjacquet/subscan/internal/models"
)

// categoryRule maps a set of keywords to a catalog category. First match in
// table order wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"stream", "video", "movie", "film", "watch", "视频", "影视"}, models.CategoryStreaming},
	{[]string{"music", "song", "audio", "podcast", "音乐", "歌曲"}, models.CategoryMusic},
	{[]string{"cloud", "storage", "backup", "云存储", "网盘", "云盘"}, models.CategoryCloudStorage},
	{[]string{"ai", "artificial intelligence", "machine learning", "人工智能"}, models.CategoryAI},
	{[]string{"game", "gaming", "play", "游戏"}, models.CategoryGaming},
	{[]string{"fitness", "workout", "health", "gym", "exercise", "健身", "运动"}, models.CategoryFitness},
	{[]string{"news", "journal", "newspaper", "press", "新闻", "报纸"}, models.CategoryNews},
	{[]string{"learn", "course", "education", "study", "学习", "课程", "教育"}, models.CategoryEducation},
	{[]string{"invest", "stock", "trade", "bank", "finance", "投资", "理财", "金融"}, models.CategoryFinance},
	{[]string{"design", "photo", "edit", "creative", "设计", "创意"}, models.CategorySoftware},
	{[]string{"vpn", "security", "privacy", "安全", "隐私"}, models.CategorySoftware},
	{[]string{"code", "develop", "programming", "git", "编程", "开发"}, models.CategorySoftware},
	{[]string{"project", "task", "team", "collaborate", "项目", "协作"}, models.CategoryProductivity},
}

// InferCategory guesses a category from keywords in the text. Used only as a
// fallback when no known-service match supplied one. Returns false when no
// keyword matches.
func InferCategory(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
