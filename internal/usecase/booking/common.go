package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
)

// Recorder recebe os contadores de negócio (implementado por metrics.Metrics).
type Recorder interface {
	BookingCreated(tipo string)
	BookingRejected(reason string)
	BookingsRemoved(n int)
}

type nopRecorder struct{}

func (nopRecorder) BookingCreated(string)  {}
func (nopRecorder) BookingRejected(string) {}
func (nopRecorder) BookingsRemoved(int)    {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func parseFecha(s string) (time.Time, error) {
	d, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

func findEmployee(ctx context.Context, repo domain.Repository, numero string) (*domain.Employee, error) {
	emp, err := repo.FindEmployee(ctx, numero)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}
	return emp, nil
}
