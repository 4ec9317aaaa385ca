package usecase

import (
	"time"

	"github.com/dacaceros97/mentorias-backend/internal/repository"
	"github.com/dacaceros97/mentorias-backend/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AppointmentUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, notifier domain.Notifier, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, notifier, timeout)
}
