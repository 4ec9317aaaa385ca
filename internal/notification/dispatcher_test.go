package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type namerStub struct {
	name string
	err  error
}

func (n namerStub) MentorName(_ context.Context, _ int64) (string, error) {
	return n.name, n.err
}

type recordingSender struct {
	mu    sync.Mutex
	sent  []Message
	err   error
	block chan struct{}
}

func (s *recordingSender) Send(ctx context.Context, msg Message) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.sent...)
}

func newTestDispatcher(names MentorNamer, sender Sender, opts Options) *Dispatcher {
	return NewDispatcher(zap.NewNop().Sugar(), names, NewComposer("Booked"), sender, opts)
}

func TestDispatcherDeliversConfirmation(t *testing.T) {
	sender := &recordingSender{}
	d := newTestDispatcher(namerStub{name: "Bob"}, sender, Options{Workers: 2, QueueSize: 4})
	require.NoError(t, d.OnStart(context.Background()))

	d.AppointmentCreated(sampleAppointment())
	require.NoError(t, d.OnStop(context.Background()))

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "ana@example.com", msgs[0].To)
	require.NotEmpty(t, msgs[0].ID)
	require.Contains(t, msgs[0].HTMLBody, "<strong>Bob</strong>")
}

func TestDispatcherLookupFailureUsesPlaceholder(t *testing.T) {
	sender := &recordingSender{}
	d := newTestDispatcher(namerStub{err: errors.New("db down")}, sender, Options{Workers: 1, QueueSize: 1})
	require.NoError(t, d.OnStart(context.Background()))

	d.AppointmentCreated(sampleAppointment())
	require.NoError(t, d.OnStop(context.Background()))

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0].HTMLBody, PlaceholderMentorName)
}

func TestDispatcherSendFailureIsSwallowed(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp: 535 auth failed")}
	d := newTestDispatcher(namerStub{name: "Bob"}, sender, Options{Workers: 1, QueueSize: 2})
	require.NoError(t, d.OnStart(context.Background()))

	d.AppointmentCreated(sampleAppointment())
	d.AppointmentCreated(sampleAppointment())
	require.NoError(t, d.OnStop(context.Background()))

	require.Len(t, sender.messages(), 2)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sender := &recordingSender{}
	d := newTestDispatcher(namerStub{name: "Bob"}, sender, Options{Workers: 1, QueueSize: 1})

	// not started: the single buffer slot fills and the rest is dropped without blocking
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.AppointmentCreated(sampleAppointment())
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AppointmentCreated blocked")
	}

	require.NoError(t, d.OnStart(context.Background()))
	require.NoError(t, d.OnStop(context.Background()))
	require.Len(t, sender.messages(), 1)
}

func TestDispatcherDropsAfterStop(t *testing.T) {
	sender := &recordingSender{}
	d := newTestDispatcher(namerStub{name: "Bob"}, sender, Options{Workers: 1, QueueSize: 1})
	require.NoError(t, d.OnStart(context.Background()))
	require.NoError(t, d.OnStop(context.Background()))
	require.NoError(t, d.OnStop(context.Background()))

	d.AppointmentCreated(sampleAppointment())
	require.Empty(t, sender.messages())
	require.Error(t, d.OnStart(context.Background()))
}

func TestDispatcherStopDeadlineCancelsInflight(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	d := newTestDispatcher(namerStub{name: "Bob"}, sender, Options{Workers: 1, QueueSize: 2, SendTimeout: time.Minute})
	require.NoError(t, d.OnStart(context.Background()))

	d.AppointmentCreated(sampleAppointment())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := d.OnStop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Empty(t, sender.messages())
}
