// Package entity 定义领域实体
package entity

import (
	"encoding/json"
	"time"
)

// ProfileInput 用户提交的资料表单
// 枚举字段只是界面上的可选项，不做服务端白名单校验，未知值原样透传。
type ProfileInput struct {
	AgeBracket       string   `json:"ageBracket"`
	Gender           string   `json:"gender"`
	Platform         string   `json:"platform"`
	ProfileText      string   `json:"profileText"`
	Notes            string   `json:"notes,omitempty"`
	Priorities       []string `json:"priorities"`
	StylePreference  string   `json:"stylePreference"`
	LengthPreference string   `json:"lengthPreference"`

	// 可选的个人信息，仅在非空时写入提示词
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
	Age  string `json:"age,omitempty"`
}

// GeneratedProfile 模型返回并通过结构校验的资料文案
type GeneratedProfile struct {
	Bio           string   `json:"bio"`
	PromptAnswers []string `json:"prompt_answers"`
	FirstMessages []string `json:"first_messages"`
	StyleNotes    string   `json:"style_notes"`
}

// MarshalJSON 把 nil 切片编码为 []，保证输出能被 Parse 重新读回
func (p GeneratedProfile) MarshalJSON() ([]byte, error) {
	type plain GeneratedProfile
	out := plain(p)
	if out.PromptAnswers == nil {
		out.PromptAnswers = []string{}
	}
	if out.FirstMessages == nil {
		out.FirstMessages = []string{}
	}
	return json.Marshal(out)
}

// ProfileStats 生成结果的阅读统计
type ProfileStats struct {
	BioCharacters int    `json:"bio_characters"`
	BioWords      int    `json:"bio_words"`
	ReadingTime   string `json:"reading_time"`
}

// ResultRecord 一次提交的完整结果，写入会话缓存
type ResultRecord struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Input       ProfileInput     `json:"input"`
	Output      GeneratedProfile `json:"output"`
	Stats       ProfileStats     `json:"stats"`
}

// PreviewInput 预览图请求
type PreviewInput struct {
	Platform        string   `json:"platform"`
	Bio             string   `json:"bio"`
	PromptAnswers   []string `json:"promptAnswers,omitempty"`
	FirstMessages   []string `json:"firstMessages,omitempty"`
	OriginalProfile string   `json:"originalProfile,omitempty"`
	PhotoDataURL    string   `json:"photoDataUrl,omitempty"`
}

// InlineImage 随预览请求一并发送的参考照片
type InlineImage struct {
	MimeType string
	Data     string // base64
}
