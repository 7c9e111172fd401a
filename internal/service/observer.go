package service

import (
	"context"

	"github.com/codeacademypro/contactapi/internal/logging"
	"github.com/codeacademypro/contactapi/internal/models"
)

// Stage names the submission step that rejected a request.
type Stage string

const (
	StageTerms      Stage = "terms"
	StageCaptcha    Stage = "captcha"
	StageValidation Stage = "validation"
	StagePersist    Stage = "persist"
)

// Observer receives the outcome of every branch of the contact pipeline.
// Implementations must be safe for concurrent use.
type Observer interface {
	Rejected(ctx context.Context, stage Stage, err error)
	Persisted(ctx context.Context, contact *models.Contact)
	StoreFailed(ctx context.Context, op string, err error)
	CaptchaFailed(ctx context.Context, err error)
	Notified(ctx context.Context, contact *models.Contact, channel string, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) Rejected(context.Context, Stage, error) {}
func (NopObserver) Persisted(context.Context, *models.Contact) {}
func (NopObserver) StoreFailed(context.Context, string, error) {}
func (NopObserver) CaptchaFailed(context.Context, error) {}
func (NopObserver) Notified(context.Context, *models.Contact, string, error) {}

// LogObserver writes pipeline events to the application logger.
type LogObserver struct {
	logger *logging.Logger
}

// NewLogObserver creates an Observer backed by logger
func NewLogObserver(logger *logging.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Rejected(ctx context.Context, stage Stage, err error) {
	o.logger.Warn("Contact submission rejected at %s%s: %v", stage, requestSuffix(ctx), err)
}

func (o *LogObserver) Persisted(ctx context.Context, contact *models.Contact) {
	o.logger.Info("Contact created successfully: %d%s", contact.ID, requestSuffix(ctx))
}

func (o *LogObserver) StoreFailed(ctx context.Context, op string, err error) {
	o.logger.Error("Contact store %s failed%s: %v", op, requestSuffix(ctx), err)
}

func (o *LogObserver) CaptchaFailed(ctx context.Context, err error) {
	o.logger.Warn("CAPTCHA verification failed%s: %v", requestSuffix(ctx), err)
}

func (o *LogObserver) Notified(ctx context.Context, contact *models.Contact, channel string, err error) {
	if err != nil {
		o.logger.Error("Failed to notify %s about contact %d%s: %v", channel, contact.ID, requestSuffix(ctx), err)
		return
	}
	o.logger.Info("Notified %s about contact %d%s", channel, contact.ID, requestSuffix(ctx))
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id for observer output.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestSuffix(ctx context.Context) string {
	if id := RequestIDFromContext(ctx); id != "" {
		return " [request " + id + "]"
	}
	return ""
}
