package prompt

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryProfileCopyTemplate(t *testing.T) {
	r := NewRegistry()
	tpl, err := r.ChatTemplate(PromptProfileCopyV1)
	require.NoError(t, err)

	msgs, err := tpl.Format(context.Background(), map[string]any{VarUserDetails: "Age bracket: 55-64"})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, schema.System, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "mature adults (40+)")

	assert.Equal(t, schema.User, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "User details:\nAge bracket: 55-64\n\n")
	for _, key := range []string{"bio", "prompt_answers", "first_messages", "style_notes"} {
		assert.Contains(t, msgs[1].Content, `"`+key+`"`)
	}
	assert.Contains(t, msgs[1].Content, "{\n  \"bio\"")
	assert.Contains(t, msgs[1].Content, "confidence\"\n}")
}

func TestRegistryPreviewTemplate(t *testing.T) {
	tpl, err := NewRegistry().ChatTemplate(PromptProfilePreviewV1)
	require.NoError(t, err)

	msgs, err := tpl.Format(context.Background(), map[string]any{VarPlatform: "Hinge"})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, schema.User, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "mockup of a Hinge dating profile")
	assert.NotContains(t, msgs[0].Content, "{platform}")
}

func TestRegistryCachesTemplates(t *testing.T) {
	r := NewRegistry()
	a, err := r.ChatTemplate(PromptProfileCopyV1)
	require.NoError(t, err)
	b, err := r.ChatTemplate(PromptProfileCopyV1)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestRegistryUnknownPrompt(t *testing.T) {
	_, err := NewRegistry().ChatTemplate("missing")
	assert.Error(t, err)

	var nilRegistry *Registry
	_, err = nilRegistry.ChatTemplate(PromptProfilePreviewV1)
	assert.Error(t, err)
}

func TestRegistryMissingVariable(t *testing.T) {
	tpl, err := NewRegistry().ChatTemplate(PromptProfilePreviewV1)
	require.NoError(t, err)

	_, err = tpl.Format(context.Background(), map[string]any{})
	assert.Error(t, err)
}
