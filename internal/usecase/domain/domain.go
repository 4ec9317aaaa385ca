package domain

import (
	"context"
	"time"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
	"github.com/dacaceros97/mentorias-backend/internal/repository"

	"go.uber.org/zap"
)

// Notifier receives appointments that were persisted. Implementations must not block
// and must not report delivery back to the caller.
type Notifier interface {
	AppointmentCreated(appt entities.Appointment)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log      *zap.SugaredLogger
	repo     repository.Repository
	notifier Notifier
	timeout  time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	notifier Notifier,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:      log.Named("usecase"),
		repo:     repo,
		notifier: notifier,
		timeout:  timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
