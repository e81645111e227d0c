package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	einoobs "silvernest-api/internal/observability/eino"
	wfmodel "silvernest-api/internal/workflow/model"
	wfnode "silvernest-api/internal/workflow/node"
	workflowport "silvernest-api/internal/workflow/port"
	"silvernest-api/pkg/logger"
)

const workflowProfileCopy = "profile_copy"

// ErrEmptyCompletion 模型返回了空内容
var ErrEmptyCompletion = errors.New("empty llm completion")

type ProfileCopyChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.ProfileCopyInput, *wfmodel.ProfileCopyOutput]
	chainErr  error
}

func NewProfileCopyChain(factory workflowport.ChatModelFactory) *ProfileCopyChain {
	return &ProfileCopyChain{factory: factory}
}

// Invoke 发送 system/user 两条消息并返回模型原始文本
func (c *ProfileCopyChain) Invoke(ctx context.Context, in *wfmodel.ProfileCopyInput) (*wfmodel.ProfileCopyOutput, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

type profileCopyState struct {
	In       *wfmodel.ProfileCopyInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *ProfileCopyChain) getChain() (compose.Runnable[*wfmodel.ProfileCopyInput, *wfmodel.ProfileCopyOutput], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *ProfileCopyChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.ProfileCopyInput, *wfmodel.ProfileCopyOutput], error) {
	chain := compose.NewChain[*wfmodel.ProfileCopyInput, *wfmodel.ProfileCopyOutput]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.ProfileCopyInput) (*profileCopyState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			return &profileCopyState{
				In: in,
				Messages: []*schema.Message{
					schema.SystemMessage(in.System),
					schema.UserMessage(in.User),
				},
			}, nil
		}),
		compose.WithNodeName("profile_copy.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *profileCopyState) (*profileCopyState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}

			provider := strings.TrimSpace(st.In.Provider)
			ctx = einoobs.WithWorkflowProvider(ctx, workflowProfileCopy, provider)
			chatModel, err := c.factory.Get(ctx, provider)
			if err != nil {
				return nil, err
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, buildProfileCopyOptions(st.In, true)...)
			if err != nil && wfnode.IsResponseFormatUnsupportedError(err) {
				logger.Warn(ctx, "llm json_object not supported, fallback to prompt-only",
					"provider", provider,
					"model", st.In.Model,
					"error", err.Error(),
				)
				outMsg, err = chatModel.Generate(ctx, st.Messages, buildProfileCopyOptions(st.In, false)...)
			}
			if err != nil {
				return nil, err
			}
			if outMsg == nil || strings.TrimSpace(outMsg.Content) == "" {
				return nil, ErrEmptyCompletion
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("profile_copy.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *profileCopyState) (*wfmodel.ProfileCopyOutput, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			out := &wfmodel.ProfileCopyOutput{
				Raw: st.OutMsg.Content,
				Meta: wfmodel.LLMUsageMeta{
					Provider:    strings.TrimSpace(st.In.Provider),
					Model:       strings.TrimSpace(st.In.Model),
					GeneratedAt: time.Now().UTC(),
				},
			}
			if st.In.Temperature != nil {
				out.Meta.Temperature = float64(*st.In.Temperature)
			}
			if st.OutMsg.ResponseMeta != nil && st.OutMsg.ResponseMeta.Usage != nil {
				out.Meta.PromptTokens = st.OutMsg.ResponseMeta.Usage.PromptTokens
				out.Meta.CompletionTokens = st.OutMsg.ResponseMeta.Usage.CompletionTokens
			}
			return out, nil
		}),
		compose.WithNodeName("profile_copy.finalize"),
	)

	return chain.Compile(ctx)
}

func buildProfileCopyOptions(in *wfmodel.ProfileCopyInput, enableJSONMode bool) []model.Option {
	opts := make([]model.Option, 0, 4)
	if in == nil {
		return opts
	}

	if in.Temperature != nil {
		opts = append(opts, model.WithTemperature(*in.Temperature))
	}
	if in.MaxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*in.MaxTokens))
	}
	if m := strings.TrimSpace(in.Model); m != "" {
		opts = append(opts, model.WithModel(m))
	}

	if enableJSONMode {
		opts = append(opts, openaiopts.WithExtraFields(map[string]any{
			"response_format": map[string]any{"type": "json_object"},
		}))
	}

	return opts
}
