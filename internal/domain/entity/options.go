package entity

// MinProfileTextLength 提交前资料正文的最小字符数（去除首尾空白后）
const MinProfileTextLength = 40

// 表单可选项。新增平台等选项只需改这里，提示词构造不依赖这些列表。
var (
	AgeBrackets = []string{"40-44", "45-54", "55-64", "65+"}

	GenderOptions = []string{"Female", "Male", "Non-binary", "Prefer not to say"}

	Platforms = []string{"Hinge", "Bumble", "Match", "Tinder"}

	Priorities = []string{
		"Meaningful connection",
		"Sense of humor",
		"Shared values",
		"Life balance",
		"Adventure",
		"Family oriented",
	}

	StylePreferences = []string{
		"Warm and encouraging",
		"Elegant and refined",
		"Playful and witty",
		"Direct and confident",
	}

	LengthPreferences = []string{
		"Short (under 120 words)",
		"Medium (150-200 words)",
		"Expanded (250+ words)",
	}
)

// FormOptions 表单可选项集合
type FormOptions struct {
	AgeBrackets          []string `json:"ageBrackets"`
	Genders              []string `json:"genders"`
	Platforms            []string `json:"platforms"`
	Priorities           []string `json:"priorities"`
	StylePreferences     []string `json:"stylePreferences"`
	LengthPreferences    []string `json:"lengthPreferences"`
	MinProfileTextLength int      `json:"minProfileTextLength"`
}

// Options 返回当前表单可选项的副本
func Options() FormOptions {
	return FormOptions{
		AgeBrackets:          clone(AgeBrackets),
		Genders:              clone(GenderOptions),
		Platforms:            clone(Platforms),
		Priorities:           clone(Priorities),
		StylePreferences:     clone(StylePreferences),
		LengthPreferences:    clone(LengthPreferences),
		MinProfileTextLength: MinProfileTextLength,
	}
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
