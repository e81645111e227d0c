package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wfmodel "silvernest-api/internal/workflow/model"
)

type scriptedModel struct {
	replies []*schema.Message
	errs    []error
	calls   int
}

func (m *scriptedModel) Generate(context.Context, []*schema.Message, ...model.Option) (*schema.Message, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	return m.replies[i], nil
}

func (m *scriptedModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

type staticFactory struct {
	m   model.BaseChatModel
	err error
}

func (f staticFactory) Get(context.Context, string) (model.BaseChatModel, error) {
	return f.m, f.err
}

func input() *wfmodel.ProfileCopyInput {
	temp := float32(0.7)
	tokens := 500
	return &wfmodel.ProfileCopyInput{
		System:      "system",
		User:        "user",
		Provider:    "openai",
		Model:       "gpt-test",
		Temperature: &temp,
		MaxTokens:   &tokens,
	}
}

func TestProfileCopyChainInvoke(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{{
		Role:    schema.Assistant,
		Content: `{"bio":"x"}`,
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 10, CompletionTokens: 5},
		},
	}}}
	c := NewProfileCopyChain(staticFactory{m: m})

	out, err := c.Invoke(context.Background(), input())
	require.NoError(t, err)
	assert.Equal(t, `{"bio":"x"}`, out.Raw)
	assert.Equal(t, "openai", out.Meta.Provider)
	assert.Equal(t, "gpt-test", out.Meta.Model)
	assert.InDelta(t, 0.7, out.Meta.Temperature, 0.0001)
	assert.Equal(t, 10, out.Meta.PromptTokens)
	assert.Equal(t, 5, out.Meta.CompletionTokens)
}

func TestProfileCopyChainEmptyCompletion(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{{Role: schema.Assistant, Content: "\n"}}}
	_, err := NewProfileCopyChain(staticFactory{m: m}).Invoke(context.Background(), input())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrEmptyCompletion.Error())
}

func TestProfileCopyChainRetriesWithoutJSONMode(t *testing.T) {
	m := &scriptedModel{
		errs:    []error{errors.New("response_format is not supported"), nil},
		replies: []*schema.Message{nil, {Role: schema.Assistant, Content: "{}"}},
	}
	out, err := NewProfileCopyChain(staticFactory{m: m}).Invoke(context.Background(), input())
	require.NoError(t, err)
	assert.Equal(t, "{}", out.Raw)
	assert.Equal(t, 2, m.calls)
}

func TestProfileCopyChainDoesNotRetryOtherErrors(t *testing.T) {
	m := &scriptedModel{errs: []error{errors.New("invalid api key")}}
	_, err := NewProfileCopyChain(staticFactory{m: m}).Invoke(context.Background(), input())
	require.Error(t, err)
	assert.Equal(t, 1, m.calls)
}

func TestProfileCopyChainFactoryError(t *testing.T) {
	_, err := NewProfileCopyChain(staticFactory{err: errors.New("provider missing")}).Invoke(context.Background(), input())
	assert.Error(t, err)
}

func TestProfileCopyChainRequiresFactoryAndInput(t *testing.T) {
	_, err := NewProfileCopyChain(nil).Invoke(context.Background(), input())
	assert.Error(t, err)

	_, err = NewProfileCopyChain(staticFactory{}).Invoke(context.Background(), nil)
	assert.Error(t, err)
}

func TestBuildProfileCopyOptions(t *testing.T) {
	in := input()
	assert.Len(t, buildProfileCopyOptions(in, true), 4)
	assert.Len(t, buildProfileCopyOptions(in, false), 3)
	assert.Empty(t, buildProfileCopyOptions(nil, true))

	opts := model.GetCommonOptions(&model.Options{}, buildProfileCopyOptions(in, false)...)
	require.NotNil(t, opts.Model)
	assert.Equal(t, "gpt-test", *opts.Model)
}
