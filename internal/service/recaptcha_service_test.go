package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptchaServer(t *testing.T, status int, body string) (*httptest.Server, url.Values) {
	t.Helper()
	received := url.Values{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		for k, v := range r.PostForm {
			received[k] = v
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, received
}

func TestRecaptchaService_Verify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		minScore float64
		want     bool
	}{
		{"success", http.StatusOK, `{"success": true}`, 0, true},
		{"rejected token", http.StatusOK, `{"success": false, "error-codes": ["invalid-input-response"]}`, 0, false},
		{"score above minimum", http.StatusOK, `{"success": true, "score": 0.9}`, 0.5, true},
		{"score below minimum", http.StatusOK, `{"success": true, "score": 0.1}`, 0.5, false},
		{"provider error", http.StatusInternalServerError, `{"success": true}`, 0, false},
		{"malformed body", http.StatusOK, `not json`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, received := newCaptchaServer(t, tt.status, tt.body)
			observer := &recordingObserver{}
			svc := NewRecaptchaService(RecaptchaConfig{
				Secret:    "shh",
				VerifyURL: srv.URL,
				MinScore:  tt.minScore,
			}, nil, observer)

			got := svc.Verify(context.Background(), "client-token", "203.0.113.7")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "shh", received.Get("secret"))
			assert.Equal(t, "client-token", received.Get("response"))
			assert.Equal(t, "203.0.113.7", received.Get("remoteip"))
			if tt.want {
				assert.Empty(t, observer.captcha)
			} else {
				assert.Len(t, observer.captcha, 1)
			}
		})
	}
}

func TestRecaptchaService_FailsClosedWithoutSecret(t *testing.T) {
	svc := NewRecaptchaService(RecaptchaConfig{VerifyURL: "http://127.0.0.1:1"}, nil, nil)
	assert.False(t, svc.Verify(context.Background(), "token", ""))
}

func TestRecaptchaService_FailsClosedOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := srv.URL
	srv.Close()

	observer := &recordingObserver{}
	svc := NewRecaptchaService(RecaptchaConfig{Secret: "shh", VerifyURL: closedURL}, nil, observer)

	assert.False(t, svc.Verify(context.Background(), "token", ""))
	assert.Len(t, observer.captcha, 1)
}

func TestRecaptchaService_FailsClosedOnTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	svc := NewRecaptchaService(RecaptchaConfig{
		Secret:    "shh",
		VerifyURL: srv.URL,
		Timeout:   50 * time.Millisecond,
	}, nil, nil)

	assert.False(t, svc.Verify(context.Background(), "token", ""))
}
