package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"silvernest-api/internal/config"
	"silvernest-api/internal/domain/entity"
	"silvernest-api/internal/domain/repository"
)

// fakeChatModel 按顺序返回预设的回复
type fakeChatModel struct {
	mu       sync.Mutex
	replies  []fakeReply
	calls    int
	messages [][]*schema.Message
	options  []*model.Options
}

type fakeReply struct {
	content string
	err     error
}

func (m *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, input)
	m.options = append(m.options, model.GetCommonOptions(&model.Options{}, opts...))

	idx := min(m.calls, len(m.replies)-1)
	m.calls++
	r := m.replies[idx]
	if r.err != nil {
		return nil, r.err
	}
	return &schema.Message{
		Role:    schema.Assistant,
		Content: r.content,
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200},
		},
	}, nil
}

func (m *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

// fakeModels 实现 ChatModelProvider
type fakeModels struct {
	providers map[string]config.ProviderConfig
	chat      *fakeChatModel
}

func newFakeModels(chat *fakeChatModel, apiKey string) *fakeModels {
	return &fakeModels{
		providers: map[string]config.ProviderConfig{
			"openai": {APIKey: apiKey, Model: "gpt-test", MaxTokens: 800, Temperature: 0.8},
		},
		chat: chat,
	}
}

func (f *fakeModels) Provider(name string) (string, config.ProviderConfig, bool) {
	if name == "" {
		name = "openai"
	}
	p, ok := f.providers[name]
	return name, p, ok
}

func (f *fakeModels) Get(_ context.Context, name string) (model.BaseChatModel, error) {
	if _, _, ok := f.Provider(name); !ok {
		return nil, errors.New("provider not found")
	}
	return f.chat, nil
}

// memoryStore 内存版 ResultRepository
type memoryStore struct {
	mu      sync.Mutex
	records map[string]*entity.ResultRecord
	saveErr error
	getErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]*entity.ResultRecord{}}
}

func (s *memoryStore) Save(_ context.Context, rec *entity.ResultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[rec.ID] = rec
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*entity.ResultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	rec, ok := s.records[id]
	if !ok {
		return nil, repository.ErrResultNotFound
	}
	return rec, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// fakeImages 实现 ImageGenerator
type fakeImages struct {
	configured bool
	image      string
	err        error

	prompt string
	photo  *entity.InlineImage
}

func (f *fakeImages) Configured() bool { return f.configured }

func (f *fakeImages) Generate(_ context.Context, prompt string, photo *entity.InlineImage) (string, error) {
	f.prompt = prompt
	f.photo = photo
	return f.image, f.err
}
