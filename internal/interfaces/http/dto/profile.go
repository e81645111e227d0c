package dto

import (
	"silvernest-api/internal/domain/entity"
)

// GenerateProfileRequest 文案生成请求
type GenerateProfileRequest struct {
	AgeBracket       string   `json:"ageBracket"`
	Gender           string   `json:"gender"`
	Platform         string   `json:"platform"`
	ProfileText      string   `json:"profileText"`
	Notes            string   `json:"notes"`
	Priorities       []string `json:"priorities"`
	StylePreference  string   `json:"stylePreference"`
	LengthPreference string   `json:"lengthPreference"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	Age              string   `json:"age"`
}

// ToEntity 转换为领域输入
func (r *GenerateProfileRequest) ToEntity() entity.ProfileInput {
	return entity.ProfileInput{
		AgeBracket:       r.AgeBracket,
		Gender:           r.Gender,
		Platform:         r.Platform,
		ProfileText:      r.ProfileText,
		Notes:            r.Notes,
		Priorities:       r.Priorities,
		StylePreference:  r.StylePreference,
		LengthPreference: r.LengthPreference,
		Name:             r.Name,
		City:             r.City,
		Age:              r.Age,
	}
}

// PreviewProfileRequest 预览图请求
type PreviewProfileRequest struct {
	Platform        string   `json:"platform"`
	Bio             string   `json:"bio"`
	PromptAnswers   []string `json:"promptAnswers"`
	FirstMessages   []string `json:"firstMessages"`
	OriginalProfile string   `json:"originalProfile"`
	PhotoDataURL    string   `json:"photoDataUrl"`
}

// ToEntity 转换为领域输入
func (r *PreviewProfileRequest) ToEntity() entity.PreviewInput {
	return entity.PreviewInput{
		Platform:        r.Platform,
		Bio:             r.Bio,
		PromptAnswers:   r.PromptAnswers,
		FirstMessages:   r.FirstMessages,
		OriginalProfile: r.OriginalProfile,
		PhotoDataURL:    r.PhotoDataURL,
	}
}

// PreviewProfileResponse 预览图响应
type PreviewProfileResponse struct {
	ImageBase64 string `json:"imageBase64"`
}
