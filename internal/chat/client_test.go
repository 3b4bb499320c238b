package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnconfiguredClient(t *testing.T) {
	c := New("", "")
	assert.False(t, c.Configured())

	_, err := c.Reply(context.Background(), "How often should I squat?")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConfiguredClient(t *testing.T) {
	c := New("sk-test-key", "")
	assert.True(t, c.Configured())
	assert.Equal(t, defaultModel, c.model)

	custom := New("sk-test-key", "gpt-4o-mini")
	assert.Equal(t, "gpt-4o-mini", custom.model)
}
