package profile

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"silvernest-api/internal/domain/entity"
)

const wordsPerMinute = 180

// CountCharacters 按 Unicode 码点计数
func CountCharacters(s string) int {
	return utf8.RuneCountInString(s)
}

// CountWords 按空白切分计数
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// EstimateReadingTime 按 180 词/分钟估算阅读时长
func EstimateReadingTime(s string) string {
	minutes := float64(CountWords(s)) / wordsPerMinute
	if minutes < 1 {
		return "Less than a minute"
	}
	return fmt.Sprintf("%d min read", int(math.Round(minutes)))
}

// BuildStats 计算简介的统计信息
func BuildStats(p entity.GeneratedProfile) entity.ProfileStats {
	return entity.ProfileStats{
		BioCharacters: CountCharacters(p.Bio),
		BioWords:      CountWords(p.Bio),
		ReadingTime:   EstimateReadingTime(p.Bio),
	}
}
