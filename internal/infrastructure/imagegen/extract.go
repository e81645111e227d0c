package imagegen

import (
	"github.com/tidwall/gjson"
)

// extractStrategy 从响应体中取出 base64 图片，找不到时返回空串
type extractStrategy struct {
	name    string
	extract func(body []byte) string
}

// knownResponseShapes 接入时观察到的响应结构，按优先级排列。
// 服务端新增结构时在这里追加。
var knownResponseShapes = []extractStrategy{
	{
		name: "candidates.image.base64",
		extract: func(body []byte) string {
			return gjson.GetBytes(body, "candidates.0.image.base64").String()
		},
	},
	{
		name: "candidates.content.parts.inline_data",
		extract: func(body []byte) string {
			var found string
			gjson.GetBytes(body, "candidates.0.content.parts").ForEach(func(_, part gjson.Result) bool {
				found = part.Get("inline_data.data").String()
				return found == ""
			})
			return found
		},
	},
	{
		name: "data.b64_json",
		extract: func(body []byte) string {
			return gjson.GetBytes(body, "data.0.b64_json").String()
		},
	},
}

// extractImage 依次尝试已知结构，返回图片数据与命中的结构名
func extractImage(body []byte) (string, string, bool) {
	if !gjson.ValidBytes(body) {
		return "", "", false
	}
	for _, s := range knownResponseShapes {
		if data := s.extract(body); data != "" {
			return data, s.name, true
		}
	}
	return "", "", false
}
