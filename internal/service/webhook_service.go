package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeacademypro/contactapi/internal/models"
	"github.com/codeacademypro/contactapi/internal/version"
)

// Notifier forwards a persisted contact to an external channel.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, contact *models.Contact) error
}

// WebhookService posts persisted contacts as JSON to an automation webhook
// (Make, Zapier, n8n and similar).
type WebhookService struct {
	url    string
	client *http.Client
}

// NewWebhookService creates a webhook notifier. A nil client gets a dedicated
// client bounded by timeout.
func NewWebhookService(url string, timeout time.Duration, client *http.Client) *WebhookService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &WebhookService{url: url, client: client}
}

func (s *WebhookService) Name() string {
	return "webhook"
}

// Notify makes exactly one delivery attempt.
func (s *WebhookService) Notify(ctx context.Context, contact *models.Contact) error {
	payload, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
