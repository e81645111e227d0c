package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"silvernest-api/internal/domain/entity"
	apperrors "silvernest-api/pkg/errors"
)

// 面向用户的校验提示
const (
	MsgProfileTooShort  = "Share a bit more of your current profile so we can offer thoughtful feedback."
	MsgAgeBracket       = "Please select an age bracket."
	MsgGender           = "Please choose how you would like us to reference you."
	MsgPlatform         = "Please choose a platform."
	MsgStylePreference  = "Choose a style preference."
	MsgLengthPreference = "Choose a length preference."
	MsgPreviewRequired  = "Platform and bio are required."
)

var dataURLPattern = regexp.MustCompile(`^data:(.*?);base64,(.*)$`)

// NormalizeInput 修剪自由文本并把 nil 标签转为空切片
func NormalizeInput(in entity.ProfileInput) entity.ProfileInput {
	in.ProfileText = strings.TrimSpace(in.ProfileText)
	in.Notes = strings.TrimSpace(in.Notes)
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.Age = strings.TrimSpace(in.Age)
	if in.Priorities == nil {
		in.Priorities = []string{}
	}
	return in
}

// ValidateInput 校验必填字段与资料最小长度，按固定顺序返回第一个问题。
// 枚举值只检查是否为空，不做白名单。
func ValidateInput(in entity.ProfileInput) error {
	switch {
	case utf8.RuneCountInString(strings.TrimSpace(in.ProfileText)) < entity.MinProfileTextLength:
		return apperrors.NewValidation(MsgProfileTooShort)
	case in.AgeBracket == "":
		return apperrors.NewValidation(MsgAgeBracket)
	case in.Gender == "":
		return apperrors.NewValidation(MsgGender)
	case in.Platform == "":
		return apperrors.NewValidation(MsgPlatform)
	case in.StylePreference == "":
		return apperrors.NewValidation(MsgStylePreference)
	case in.LengthPreference == "":
		return apperrors.NewValidation(MsgLengthPreference)
	}
	return nil
}

// ValidatePreview 预览请求只要求平台与简介
func ValidatePreview(in entity.PreviewInput) error {
	if in.Platform == "" || in.Bio == "" {
		return apperrors.NewValidation(MsgPreviewRequired)
	}
	return nil
}

// ParseDataURL 解析 data:<mime>;base64,<data>；格式不符返回 nil（视为未附带照片）
func ParseDataURL(s string) *entity.InlineImage {
	if s == "" {
		return nil
	}
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &entity.InlineImage{MimeType: m[1], Data: m[2]}
}
