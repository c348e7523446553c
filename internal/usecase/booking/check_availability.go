package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
)

type AvailabilityOutput struct {
	Employee domain.Employee  `json:"employee"`
	Fecha    string           `json:"fecha"`
	Allowed  bool             `json:"allowed"`
	Reason   domain.Reason    `json:"reason,omitempty"`
	SameDay  []domain.Booking `json:"same_day"`
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	numero string,
	fecha time.Time,
) (*AvailabilityOutput, error) {

	emp, err := findEmployee(ctx, uc.repo, numero)
	if err != nil {
		return nil, err
	}

	agenda, err := uc.repo.Agenda(ctx)
	if err != nil {
		return nil, err
	}

	day := domain.DateOf(fecha)
	dec := domain.CanBook(day, emp.Equipo, agenda)

	return &AvailabilityOutput{
		Employee: *emp,
		Fecha:    day.Format(domain.DateLayout),
		Allowed:  dec.Allowed,
		Reason:   dec.Reason,
		SameDay:  domain.BookingsOn(day, agenda),
	}, nil
}
