// Package analytics sends product usage events to PostHog.
package analytics

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClient wraps posthog.Client so callers need not care whether
// analytics is configured. The zero value is a disabled client.
type PosthogClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewPosthogClient returns a disabled client when apiKey is empty.
func NewPosthogClient(apiKey, endpoint string, logger *slog.Logger) (*PosthogClient, error) {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, analytics disabled.")
		return &PosthogClient{}, nil
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to create posthog client: %w", err)
	}
	logger.Info("PostHog analytics enabled", slog.String("endpoint", endpoint))
	return &PosthogClient{client: client, logger: logger}, nil
}

func (p *PosthogClient) Enabled() bool {
	return p != nil && p.client != nil
}

// Capture enqueues an event; delivery happens in the background.
func (p *PosthogClient) Capture(distinctID, event string, properties map[string]any) {
	if !p.Enabled() {
		return
	}
	err := p.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		p.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (p *PosthogClient) Close() {
	if !p.Enabled() {
		return
	}
	if err := p.client.Close(); err != nil {
		p.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
