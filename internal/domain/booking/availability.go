package booking

import (
	"time"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
)

// MaxPerDay é o teto diário de registros na agenda.
const MaxPerDay = 3

type Reason string

const (
	ReasonDayFull      Reason = "day_full"
	ReasonTeamConflict Reason = "team_conflict"
)

type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
}

// Err converte uma decisão negativa em erro de negócio.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return httperr.ErrBusiness(string(d.Reason))
}

// CanBook avalia as regras na ordem: dia cheio, depois equipe já presente.
// A regra de equipe vale para qualquer tipo (Vacaciones, Permiso, Sanción).
func CanBook(date time.Time, team string, agenda []Booking) Decision {
	sameDay := BookingsOn(date, agenda)

	if len(sameDay) >= MaxPerDay {
		return Decision{Reason: ReasonDayFull}
	}

	for _, b := range sameDay {
		if b.Equipo == team {
			return Decision{Reason: ReasonTeamConflict}
		}
	}

	return Decision{Allowed: true}
}
