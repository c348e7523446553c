package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
)

type GetCalendarInput struct {
	Year     int
	Month    int
	Team     string
	OnlyFull bool
}

type GetCalendar struct {
	repo domain.Repository
}

func NewGetCalendar(repo domain.Repository) *GetCalendar {
	return &GetCalendar{repo: repo}
}

func (uc *GetCalendar) Execute(ctx context.Context, in GetCalendarInput) (*domain.Month, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 1 || in.Year > 9999 {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	agenda, err := uc.repo.Agenda(ctx)
	if err != nil {
		return nil, err
	}

	m := domain.BuildMonth(in.Year, time.Month(in.Month), agenda, in.Team, in.OnlyFull)
	return &m, nil
}

// ======================================================
// Detalhe do dia
// ======================================================

type GetDayDetail struct {
	repo domain.Repository
}

func NewGetDayDetail(repo domain.Repository) *GetDayDetail {
	return &GetDayDetail{repo: repo}
}

func (uc *GetDayDetail) Execute(ctx context.Context, fecha, team string) ([]domain.Booking, error) {
	day, err := parseFecha(fecha)
	if err != nil {
		return nil, err
	}

	agenda, err := uc.repo.Agenda(ctx)
	if err != nil {
		return nil, err
	}
	return domain.DayDetail(day, agenda, team), nil
}
