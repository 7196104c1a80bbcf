package registration

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, reg *domain.Registration) error {
	return m.Called(ctx, reg).Error(0)
}
func (m *mockStore) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *mockStore) ListAll(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *mockStore) Delete(ctx context.Context, eventID, registrationID string) error {
	return m.Called(ctx, eventID, registrationID).Error(0)
}

// chanNotifier signals each Run call on a channel so tests can wait for the
// detached goroutine deterministically.
type chanNotifier struct {
	calls chan *domain.Registration
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{calls: make(chan *domain.Registration, 1)}
}

func (n *chanNotifier) Run(_ context.Context, reg *domain.Registration) {
	n.calls <- reg
}

func (n *chanNotifier) await(t *testing.T) *domain.Registration {
	t.Helper()
	select {
	case reg := <-n.calls:
		return reg
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not invoked")
		return nil
	}
}

// --- helpers ---

func baseReq() domain.CreateRegistrationRequest {
	return domain.CreateRegistrationRequest{
		FirstName:  "Max",
		LastName:   "Mustermann",
		Email:      "max@example.com",
		EventID:    "e1",
		EventTitle: "Testtauch-Event",
	}
}

var regIDRe = regexp.MustCompile(`^\d+-[0-9a-z]{7}$`)

// --- Create tests ---

func TestCreate_MissingRequiredField_NoStoreWrite(t *testing.T) {
	missing := []func(*domain.CreateRegistrationRequest){
		func(r *domain.CreateRegistrationRequest) { r.FirstName = "" },
		func(r *domain.CreateRegistrationRequest) { r.LastName = "" },
		func(r *domain.CreateRegistrationRequest) { r.Email = "" },
		func(r *domain.CreateRegistrationRequest) { r.EventID = "" },
	}
	for _, blank := range missing {
		store := &mockStore{}
		svc := NewService(store, newChanNotifier())

		req := baseReq()
		blank(&req)
		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	}
}

func TestCreate_InvalidEmail_Rejected(t *testing.T) {
	for _, addr := range []string{"not-an-email", "a@b", "max@", "@example.com"} {
		store := &mockStore{}
		svc := NewService(store, newChanNotifier())

		req := baseReq()
		req.Email = addr
		_, err := svc.Create(context.Background(), req)

		require.Error(t, err, addr)
		assert.True(t, errors.Is(err, domain.ErrBadRequest), addr)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	}
}

func TestCreate_StoreFailure_Propagates(t *testing.T) {
	store := &mockStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(domain.ErrPersistence)
	svc := NewService(store, newChanNotifier())

	_, err := svc.Create(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersistence))
}

func TestCreate_HappyPath(t *testing.T) {
	store := &mockStore{}
	store.On("Put", mock.Anything, mock.AnythingOfType("*domain.Registration")).Return(nil)
	n := newChanNotifier()
	svc := NewService(store, n)

	before := time.Now().UTC()
	reg, err := svc.Create(context.Background(), baseReq())
	require.NoError(t, err)

	assert.Regexp(t, regIDRe, reg.RegistrationID)
	assert.Equal(t, domain.KindEvent, reg.Kind)
	assert.Equal(t, "Max", reg.FirstName)
	assert.Equal(t, "e1", reg.EventID)

	registeredAt, err := time.Parse(time.RFC3339, reg.RegisteredAt)
	require.NoError(t, err)
	assert.WithinDuration(t, before, registeredAt, 5*time.Second)

	notified := n.await(t)
	assert.Equal(t, reg.RegistrationID, notified.RegistrationID)
	store.AssertExpectations(t)
}

func TestCreate_ModuleFields_SetModuleKind(t *testing.T) {
	store := &mockStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	n := newChanNotifier()
	svc := NewService(store, n)

	req := baseReq()
	req.ModuleID = "m1"
	req.ModuleTitle = "Trockentauchen"
	reg, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.KindModule, reg.Kind)
	n.await(t)
}

func TestCreate_InconsistentModuleFields_EventKind(t *testing.T) {
	store := &mockStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	n := newChanNotifier()
	svc := NewService(store, n)

	req := baseReq()
	req.ModuleID = "m1" // title missing
	reg, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.KindEvent, reg.Kind)
	n.await(t)
}

func TestCreate_NotifierPanic_DoesNotPropagate(t *testing.T) {
	store := &mockStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(store, panicNotifier{})

	reg, err := svc.Create(context.Background(), baseReq())

	require.NoError(t, err)
	assert.NotNil(t, reg)
	// Give the detached goroutine time to panic and recover.
	time.Sleep(50 * time.Millisecond)
}

type panicNotifier struct{}

func (panicNotifier) Run(context.Context, *domain.Registration) { panic("boom") }

// --- List / Delete tests ---

func TestListByEvent_PassesThrough(t *testing.T) {
	store := &mockStore{}
	regs := []domain.Registration{{RegistrationID: "r1", EventID: "e1"}}
	store.On("ListByEvent", mock.Anything, "e1").Return(regs, nil)
	svc := NewService(store, newChanNotifier())

	got, err := svc.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, regs, got)
	store.AssertExpectations(t)
}

func TestDelete_Idempotent(t *testing.T) {
	store := &mockStore{}
	store.On("Delete", mock.Anything, "e1", "r1").Return(nil).Twice()
	svc := NewService(store, newChanNotifier())

	require.NoError(t, svc.Delete(context.Background(), "e1", "r1"))
	require.NoError(t, svc.Delete(context.Background(), "e1", "r1"))
	store.AssertExpectations(t)
}
