package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

// 提示词按版本号固定，任何措辞调整都应新增版本而不是改写旧文件。
const (
	PromptProfileCopyV1    PromptID = "profile_copy_v1"
	PromptProfilePreviewV1 PromptID = "profile_preview_v1"
)

// 模板变量
const (
	VarUserDetails = "user_details"
	VarPlatform    = "platform"
)

type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]einoprompt.ChatTemplate),
	}
}

// ChatTemplate 返回指定提示词的模板（FString 语法，字面量花括号写作 {{ }}）
func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	systemFile, userFile, err := resolvePromptFiles(id)
	if err != nil {
		return nil, err
	}

	messages := make([]schema.MessagesTemplate, 0, 2)
	if systemFile != "" {
		system, err := readEmbeddedText(systemFile)
		if err != nil {
			return nil, err
		}
		messages = append(messages, schema.SystemMessage(system))
	}
	user, err := readEmbeddedText(userFile)
	if err != nil {
		return nil, err
	}
	messages = append(messages, schema.UserMessage(user))

	tpl := einoprompt.FromMessages(schema.FString, messages...)
	r.cache[id] = tpl
	return tpl, nil
}

// resolvePromptFiles 返回 system/user 模板路径，system 为空表示只有 user 消息
func resolvePromptFiles(id PromptID) (string, string, error) {
	switch id {
	case PromptProfileCopyV1:
		return "templates/profile_copy_v1.system.txt", "templates/profile_copy_v1.user.txt", nil
	case PromptProfilePreviewV1:
		return "", "templates/profile_preview_v1.user.txt", nil
	default:
		return "", "", fmt.Errorf("unknown prompt id: %s", id)
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
