package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Google's reCAPTCHA endpoint. hCaptcha and Cloudflare
// Turnstile accept the same form fields and response shape.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaConfig configures the CAPTCHA verifier
type RecaptchaConfig struct {
	Secret    string
	VerifyURL string
	// MinScore is only enforced when positive (reCAPTCHA v3)
	MinScore float64
	Timeout  time.Duration
}

// RecaptchaService verifies CAPTCHA tokens against a siteverify endpoint.
// It fails closed: any error is reported as an invalid token.
type RecaptchaService struct {
	config   RecaptchaConfig
	client   *http.Client
	observer Observer
}

// NewRecaptchaService creates a new CAPTCHA verifier. A nil client gets a
// dedicated client bounded by config.Timeout.
func NewRecaptchaService(config RecaptchaConfig, client *http.Client, observer Observer) *RecaptchaService {
	if config.VerifyURL == "" {
		config.VerifyURL = DefaultVerifyURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &RecaptchaService{
		config:   config,
		client:   client,
		observer: observer,
	}
}

// recaptchaResponse represents the response from the siteverify API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify reports whether token is valid. Transport and provider failures are
// indistinguishable from a rejected token to the caller.
func (s *RecaptchaService) Verify(ctx context.Context, token, remoteIP string) bool {
	if err := s.verifyToken(ctx, token, remoteIP); err != nil {
		s.observer.CaptchaFailed(ctx, err)
		return false
	}
	return true
}

func (s *RecaptchaService) verifyToken(ctx context.Context, token, remoteIP string) error {
	if s.config.Secret == "" {
		return fmt.Errorf("captcha secret key not configured")
	}

	if token == "" {
		return fmt.Errorf("captcha token is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	data := url.Values{}
	data.Set("secret", s.config.Secret)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.VerifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify captcha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("captcha provider returned status %d", resp.StatusCode)
	}

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse captcha response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("captcha verification failed: %v", result.ErrorCodes)
	}

	if s.config.MinScore > 0 && result.Score < s.config.MinScore {
		return fmt.Errorf("captcha score too low: %.2f < %.2f", result.Score, s.config.MinScore)
	}

	return nil
}
