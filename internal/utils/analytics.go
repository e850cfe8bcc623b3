// analytics.go wraps the PostHog client so callers never have to care
// whether analytics is configured; an unconfigured wrapper swallows events.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const posthogEndpoint = "https://eu.i.posthog.com"

// AnalyticsClient is a nil-safe wrapper around posthog.Client.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient builds the wrapper. An empty API key returns a disabled
// client that drops every event.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Info("Analytics API key is empty, event capture disabled.")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: posthogEndpoint})
	if err != nil {
		logger.Warn("Failed to initialize analytics client", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("Analytics client initialized.")
	return &AnalyticsClient{client: client, logger: logger}
}

func (a *AnalyticsClient) IsEnabled() bool {
	return a != nil && a.client != nil
}

// Capture queues one event for the given user. No-op when disabled.
func (a *AnalyticsClient) Capture(userID string, event string, properties map[string]any) {
	if !a.IsEnabled() {
		return
	}
	if err := a.client.Enqueue(posthog.Capture{
		DistinctId: userID,
		Event:      event,
		Properties: properties,
	}); err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event",
			slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events. Safe to call on a disabled client.
func (a *AnalyticsClient) Close() {
	if !a.IsEnabled() {
		return
	}
	if err := a.client.Close(); err != nil && a.logger != nil {
		a.logger.Warn("Failed to close analytics client", slog.String("error", err.Error()))
	}
}
