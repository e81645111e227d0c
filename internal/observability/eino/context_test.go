package eino

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowProviderContext(t *testing.T) {
	ctx := WithWorkflowProvider(context.Background(), " profile_copy ", "openai")
	assert.Equal(t, "profile_copy", WorkflowFromContext(ctx))
	assert.Equal(t, "openai", ProviderFromContext(ctx))

	empty := WithWorkflowProvider(context.Background(), "", "  ")
	assert.Equal(t, "unknown", WorkflowFromContext(empty))
	assert.Equal(t, "unknown", ProviderFromContext(empty))
}
