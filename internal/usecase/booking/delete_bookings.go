package booking

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/audit"
	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
)

type DeleteBookingsInput struct {
	Fecha string
	Keys  []domain.RowKey
	Actor string
}

type DeleteBookings struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	lock    *sync.Mutex
	log     zerolog.Logger
}

func NewDeleteBookings(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	lock *sync.Mutex,
	log zerolog.Logger,
) *DeleteBookings {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &DeleteBookings{
		repo:    repo,
		audit:   audit,
		metrics: recorderOrNop(metrics),
		lock:    lock,
		log:     log,
	}
}

// Execute devolve quantas linhas saíram da agenda. Seleção vazia não grava nada.
func (uc *DeleteBookings) Execute(ctx context.Context, in DeleteBookingsInput) (int, error) {
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return 0, err
	}
	if len(in.Keys) == 0 {
		return 0, nil
	}

	uc.lock.Lock()
	defer uc.lock.Unlock()

	agenda, err := uc.repo.Agenda(ctx)
	if err != nil {
		return 0, err
	}

	kept, removed := domain.RemoveSelected(agenda, fecha, in.Keys)
	if len(removed) == 0 {
		return 0, nil
	}

	if err := uc.repo.RemoveBookings(ctx, kept, removed); err != nil {
		return 0, err
	}

	uc.metrics.BookingsRemoved(len(removed))
	uc.log.Info().
		Str("fecha", in.Fecha).
		Int("removed", len(removed)).
		Msg("bookings deleted")

	labels := make([]string, 0, len(removed))
	for _, b := range removed {
		labels = append(labels, domain.KeyOf(b).String())
	}
	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Role:     "admin",
		Action:   "bookings_deleted",
		Entity:   "agenda",
		Metadata: map[string]any{"fecha": in.Fecha, "rows": labels},
	})

	return len(removed), nil
}
