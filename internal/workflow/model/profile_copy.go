package model

// ProfileCopyInput 资料文案生成工作流输入；提示词已由应用层组装完成
type ProfileCopyInput struct {
	System string
	User   string

	Provider    string
	Model       string
	Temperature *float32
	MaxTokens   *int
}

// ProfileCopyOutput 工作流输出：模型原始文本及用量
type ProfileCopyOutput struct {
	Raw  string
	Meta LLMUsageMeta
}
