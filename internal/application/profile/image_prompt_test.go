package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeImagePromptFull(t *testing.T) {
	got := ComposeImagePrompt("Bumble", "Avid sailor.", []string{"Sunsets", "Jazz"}, []string{"Hi there"}, "Loves dogs")

	assert.True(t, strings.HasPrefix(got, "Create a photorealistic mockup of a Bumble dating profile designed for mature adults."))
	assert.Contains(t, got, "SilverNest")
	assert.Contains(t, got, "If a primary photo is supplied, feature it prominently")
	assert.Contains(t, got, "Bio: Avid sailor.")
	assert.Contains(t, got, "Original notes: Loves dogs")
	assert.Contains(t, got, "Prompt answers:\n• Prompt 1: Sunsets\n• Prompt 2: Jazz")
	assert.Contains(t, got, "Opening messages:\n• Message 1: Hi there")
	assert.True(t, strings.HasSuffix(got, "Show interface elements and typography consistent with Bumble."))
}

func TestComposeImagePromptMinimal(t *testing.T) {
	got := ComposeImagePrompt("Match", "Short bio.", nil, nil, "")

	assert.NotContains(t, got, "Original notes")
	assert.NotContains(t, got, "Prompt answers")
	assert.NotContains(t, got, "Opening messages")
	assert.Contains(t, got, "Bio: Short bio.\nShow interface elements and typography consistent with Match.")
}

func TestComposeImagePromptDeterministic(t *testing.T) {
	a := ComposeImagePrompt("Hinge", "b", []string{"p"}, []string{"m"}, "n")
	b := ComposeImagePrompt("Hinge", "b", []string{"p"}, []string{"m"}, "n")
	assert.Equal(t, a, b)
}
