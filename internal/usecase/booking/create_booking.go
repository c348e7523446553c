package booking

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/audit"
	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Numero string
	Fecha  string
	Tipo   string
}

// ======================================================
// USE CASE
// ======================================================

// anos aceitos na captura: o atual e os dois seguintes
const captureYears = 2

type CreateBooking struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     zerolog.Logger

	// serializa leitura+append dentro do processo; entre instâncias
	// continua valendo o último que escrever
	lock *sync.Mutex
	now  func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	lock *sync.Mutex,
	log zerolog.Logger,
) *CreateBooking {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &CreateBooking{
		repo:    repo,
		audit:   audit,
		metrics: recorderOrNop(metrics),
		log:     log,
		lock:    lock,
		now:     timezone.Today,
	}
}

// WithClock fixa o "hoje" usado para a janela de anos.
func (uc *CreateBooking) WithClock(now func() time.Time) *CreateBooking {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*domain.Booking, error) {

	// --------------------------------------------------
	// Entrada
	// --------------------------------------------------
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	if y := uc.now().Year(); fecha.Year() < y || fecha.Year() > y+captureYears {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	tipo, err := domain.ParseTipo(in.Tipo)
	if err != nil {
		return nil, err
	}

	emp, err := findEmployee(ctx, uc.repo, in.Numero)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Validação + gravação
	// --------------------------------------------------
	uc.lock.Lock()
	defer uc.lock.Unlock()

	agenda, err := uc.repo.Agenda(ctx)
	if err != nil {
		return nil, err
	}

	if dec := domain.CanBook(fecha, emp.Equipo, agenda); !dec.Allowed {
		uc.metrics.BookingRejected(string(dec.Reason))
		uc.log.Debug().
			Str("numero", emp.Numero).
			Str("fecha", in.Fecha).
			Str("reason", string(dec.Reason)).
			Msg("booking rejected")
		return nil, dec.Err()
	}

	b := domain.NewBooking(*emp, fecha, tipo)
	if err := uc.repo.AppendBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated(string(tipo))
	uc.log.Info().
		Str("numero", b.Numero).
		Str("equipo", b.Equipo).
		Str("fecha", b.Fecha.Format(domain.DateLayout)).
		Str("tipo", string(b.Tipo)).
		Msg("booking created")

	uc.audit.Dispatch(audit.Event{
		Actor:  b.Numero,
		Role:   "employee",
		Action: "booking_created",
		Entity: "agenda",
		Metadata: map[string]any{
			"fecha":  b.Fecha.Format(domain.DateLayout),
			"tipo":   b.Tipo,
			"equipo": b.Equipo,
		},
	})

	return &b, nil
}
