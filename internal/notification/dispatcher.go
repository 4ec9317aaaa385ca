package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dacaceros97/mentorias-backend/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const lookupTimeout = 2 * time.Second

// MentorNamer resolves a mentor's display name.
type MentorNamer interface {
	MentorName(ctx context.Context, mentorID int64) (string, error)
}

// Options tunes the dispatcher.
type Options struct {
	Workers       int
	QueueSize     int
	RatePerSecond float64
	SendTimeout   time.Duration
}

type task struct {
	id   string
	appt entities.Appointment
}

// Dispatcher delivers confirmation mails on its own workers. Hand-off never blocks the
// caller: when the buffer is full or the dispatcher is stopping the task is dropped and
// logged. Failed sends are logged and not retried.
type Dispatcher struct {
	log      *zap.SugaredLogger
	names    MentorNamer
	composer *Composer
	sender   Sender
	limiter  *rate.Limiter
	opts     Options

	tasks  chan task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatcher wires a dispatcher. Workers are started by OnStart.
func NewDispatcher(log *zap.SugaredLogger, names MentorNamer, composer *Composer, sender Sender, opts Options) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 0 {
		opts.QueueSize = 0
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 15 * time.Second
	}

	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		log:      log.Named("notification"),
		names:    names,
		composer: composer,
		sender:   sender,
		limiter:  rate.NewLimiter(limit, opts.Workers),
		opts:     opts,
		tasks:    make(chan task, opts.QueueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// OnStart launches the workers.
func (d *Dispatcher) OnStart(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errors.New("dispatcher stopped")
	}
	if d.started {
		return nil
	}
	d.started = true

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	d.log.Infow("notification dispatcher started", "workers", d.opts.Workers, "queue_size", d.opts.QueueSize)
	return nil
}

// OnStop stops accepting tasks and drains the buffer until ctx expires, then aborts
// in-flight sends.
func (d *Dispatcher) OnStop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.log.Warnw("notification dispatcher stopped before queue drained", "pending", len(d.tasks))
		d.cancel()
		<-done
		return ctx.Err()
	}
}

// AppointmentCreated queues a confirmation mail for appt.
func (d *Dispatcher) AppointmentCreated(appt entities.Appointment) {
	t := task{id: uuid.NewString(), appt: appt}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warnw("confirmation dropped: dispatcher stopped", "task_id", t.id, "appointment_id", appt.ID)
		return
	}

	select {
	case d.tasks <- t:
	default:
		d.log.Warnw("confirmation dropped: queue full", "task_id", t.id, "appointment_id", appt.ID)
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for t := range d.tasks {
		if d.ctx.Err() != nil {
			d.log.Warnw("confirmation dropped: dispatcher cancelled", "task_id", t.id, "appointment_id", t.appt.ID)
			continue
		}
		d.deliver(t)
	}
}

func (d *Dispatcher) deliver(t task) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Errorw("confirmation task panicked", "task_id", t.id, "appointment_id", t.appt.ID, "panic", r)
		}
	}()

	if err := d.limiter.Wait(d.ctx); err != nil {
		d.log.Warnw("confirmation dropped while throttled", "task_id", t.id, "appointment_id", t.appt.ID, "error", err)
		return
	}

	msg, err := d.composer.Compose(t.appt, d.mentorName(t))
	if err != nil {
		d.log.Errorw("failed to compose confirmation", "task_id", t.id, "appointment_id", t.appt.ID, "error", err)
		return
	}
	msg.ID = t.id

	ctx, cancel := context.WithTimeout(d.ctx, d.opts.SendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		d.log.Errorw("failed to send confirmation",
			"task_id", t.id, "appointment_id", t.appt.ID, "to", msg.To, "error", err)
		return
	}
	d.log.Infow("confirmation sent", "task_id", t.id, "appointment_id", t.appt.ID, "to", msg.To)
}

// mentorName is best-effort: failures fall back to the placeholder.
func (d *Dispatcher) mentorName(t task) string {
	ctx, cancel := context.WithTimeout(d.ctx, lookupTimeout)
	defer cancel()

	name, err := d.names.MentorName(ctx, t.appt.MentorID)
	if err != nil {
		d.log.Warnw("could not fetch mentor name for confirmation",
			"task_id", t.id, "mentor_id", t.appt.MentorID, "error", err)
		return PlaceholderMentorName
	}
	return name
}
