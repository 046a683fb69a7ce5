package analytics_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/adapters/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosthogClient_EmptyKeyDisables(t *testing.T) {
	var logs bytes.Buffer
	client, err := analytics.NewPosthogClient("", "https://eu.i.posthog.com", slog.New(slog.NewTextHandler(&logs, nil)))

	require.NoError(t, err)
	assert.False(t, client.Enabled())
	assert.Contains(t, logs.String(), "analytics disabled")

	// Disabled clients swallow calls.
	client.Capture("user-1", "invoices_created", map[string]any{"status_code": 201})
	client.Close()
}

func TestPosthogClient_NilIsDisabled(t *testing.T) {
	var client *analytics.PosthogClient
	assert.False(t, client.Enabled())
	client.Capture("user-1", "event", nil)
}
