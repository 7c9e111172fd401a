package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/codeacademypro/contactapi/internal/models"
	"github.com/codeacademypro/contactapi/internal/repository"
	"github.com/codeacademypro/contactapi/internal/validation"
)

// CaptchaVerifier checks a client CAPTCHA token. It must return false on any
// failure.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) bool
}

// ContactServiceOptions holds the optional collaborators of ContactService
type ContactServiceOptions struct {
	// Captcha is nil when CAPTCHA checks are disabled
	Captcha       CaptchaVerifier
	Notifiers     []Notifier
	Observer      Observer
	NotifyTimeout time.Duration
	Now           func() time.Time
}

// ContactService runs the submission pipeline: terms, CAPTCHA, validation,
// persistence, then background notification.
type ContactService struct {
	repo          repository.ContactRepository
	captcha       CaptchaVerifier
	notifiers     []Notifier
	observer      Observer
	notifyTimeout time.Duration
	now           func() time.Time

	mu       sync.Mutex
	draining bool
	pending  sync.WaitGroup
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository, opts ContactServiceOptions) *ContactService {
	s := &ContactService{
		repo:          repo,
		captcha:       opts.Captcha,
		notifiers:     opts.Notifiers,
		observer:      opts.Observer,
		notifyTimeout: opts.NotifyTimeout,
		now:           opts.Now,
	}
	if s.observer == nil {
		s.observer = NopObserver{}
	}
	if s.notifyTimeout <= 0 {
		s.notifyTimeout = 5 * time.Second
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// CaptchaEnabled reports whether submissions need a verified CAPTCHA token
func (s *ContactService) CaptchaEnabled() bool {
	return s.captcha != nil
}

// Submit validates and stores a submission. The returned error is a
// *PolicyError, *ValidationError or *PersistenceError.
func (s *ContactService) Submit(ctx context.Context, sub *models.ContactSubmission) (*models.Contact, error) {
	if !sub.AcceptedTerms() {
		return nil, s.reject(ctx, StageTerms, &PolicyError{Message: MsgTermsNotAccepted})
	}

	if s.captcha != nil {
		if strings.TrimSpace(sub.CaptchaToken) == "" {
			return nil, s.reject(ctx, StageCaptcha, &PolicyError{Message: MsgCaptchaMissing})
		}
		if !s.captcha.Verify(ctx, sub.CaptchaToken, sub.RemoteIP) {
			return nil, s.reject(ctx, StageCaptcha, &PolicyError{Message: MsgCaptchaInvalid})
		}
	}

	if details := validation.ValidateContact(sub); len(details) > 0 {
		return nil, s.reject(ctx, StageValidation, &ValidationError{Details: details})
	}

	contact := normalize(sub)
	contact.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, contact); err != nil {
		s.observer.StoreFailed(ctx, "insert", err)
		return nil, s.reject(ctx, StagePersist, &PersistenceError{Op: "insert contact", Err: err})
	}
	s.observer.Persisted(ctx, contact)

	s.dispatch(ctx, contact)
	return contact, nil
}

// List returns every contact, newest first
func (s *ContactService) List(ctx context.Context) ([]*models.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		s.observer.StoreFailed(ctx, "list", err)
		return nil, &PersistenceError{Op: "list contacts", Err: err}
	}
	return contacts, nil
}

// Get returns a single contact or ErrNotFound
func (s *ContactService) Get(ctx context.Context, id int64) (*models.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.observer.StoreFailed(ctx, "get", err)
		return nil, &PersistenceError{Op: "get contact", Err: err}
	}
	return contact, nil
}

// Ping checks that the contact store is reachable
func (s *ContactService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Wait blocks until every dispatched notification has finished. Submissions
// that complete after Wait was called notify inline before returning.
func (s *ContactService) Wait() {
	s.mu.Lock()
	s.draining = true
	s.mu.Unlock()

	s.pending.Wait()
}

// dispatch notifies every channel on a goroutine detached from the request,
// so the response never waits on it. Each channel gets one attempt.
func (s *ContactService) dispatch(ctx context.Context, contact *models.Contact) {
	if len(s.notifiers) == 0 {
		return
	}

	snapshot := *contact
	detached := context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		s.notifyAll(detached, &snapshot)
		return
	}
	s.pending.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.pending.Done()
		s.notifyAll(detached, &snapshot)
	}()
}

func (s *ContactService) notifyAll(ctx context.Context, contact *models.Contact) {
	for _, n := range s.notifiers {
		nctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		err := n.Notify(nctx, contact)
		cancel()
		s.observer.Notified(ctx, contact, n.Name(), err)
	}
}

func (s *ContactService) reject(ctx context.Context, stage Stage, err error) error {
	s.observer.Rejected(ctx, stage, err)
	return err
}

func normalize(sub *models.ContactSubmission) *models.Contact {
	return &models.Contact{
		Name:          strings.TrimSpace(sub.Name),
		Email:         strings.ToLower(strings.TrimSpace(sub.Email)),
		Phone:         strings.TrimSpace(sub.Phone),
		Message:       strings.TrimSpace(sub.Message),
		TermsAccepted: sub.AcceptedTerms(),
	}
}
