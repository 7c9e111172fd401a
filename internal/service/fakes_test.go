package service

import (
	"context"
	"errors"
	"sync"

	"github.com/codeacademypro/contactapi/internal/models"
	"github.com/codeacademypro/contactapi/internal/repository"
)

type mockContactRepository struct {
	mu        sync.Mutex
	contacts  []*models.Contact
	nextID    int64
	createErr error
	listErr   error
	getErr    error
	creates   int
}

func (m *mockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	contact.ID = m.nextID
	stored := *contact
	m.contacts = append(m.contacts, &stored)
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*models.Contact, 0, len(m.contacts))
	for i := len(m.contacts) - 1; i >= 0; i-- {
		result = append(result, m.contacts[i])
	}
	return result, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, c := range m.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) Ping(ctx context.Context) error {
	return nil
}

type stubVerifier struct {
	mu     sync.Mutex
	valid  bool
	calls  int
	tokens []string
}

func (v *stubVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls++
	v.tokens = append(v.tokens, token)
	return v.valid
}

type mockNotifier struct {
	name string
	err  error

	mu       sync.Mutex
	received []*models.Contact
}

func (n *mockNotifier) Name() string {
	return n.name
}

func (n *mockNotifier) Notify(ctx context.Context, contact *models.Contact) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, contact)
	return n.err
}

func (n *mockNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.received)
}

type notifiedEvent struct {
	channel string
	err     error
}

type recordingObserver struct {
	mu        sync.Mutex
	rejected  []Stage
	persisted []int64
	store     []string
	captcha   []error
	notified  []notifiedEvent
}

func (o *recordingObserver) Rejected(ctx context.Context, stage Stage, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, stage)
}

func (o *recordingObserver) Persisted(ctx context.Context, contact *models.Contact) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.persisted = append(o.persisted, contact.ID)
}

func (o *recordingObserver) StoreFailed(ctx context.Context, op string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.store = append(o.store, op)
}

func (o *recordingObserver) CaptchaFailed(ctx context.Context, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.captcha = append(o.captcha, err)
}

func (o *recordingObserver) Notified(ctx context.Context, contact *models.Contact, channel string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notified = append(o.notified, notifiedEvent{channel: channel, err: err})
}

var errNetwork = errors.New("dial tcp: connection refused")

func boolPtr(b bool) *bool {
	return &b
}
