package booking

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
)

// ExportRecord é a linha plana exportada, com fecha em YYYY-MM-DD.
type ExportRecord struct {
	Numero string `json:"numero"`
	Nombre string `json:"nombre"`
	Fecha  string `json:"fecha"`
	Equipo string `json:"equipo"`
	Tipo   string `json:"tipo"`
}

var ErrNothingToExport = httperr.ErrBusiness("nothing_to_export")

type ExportAgenda struct {
	repo domain.Repository
}

func NewExportAgenda(repo domain.Repository) *ExportAgenda {
	return &ExportAgenda{repo: repo}
}

// Execute mantém a ordem em que as linhas estão no store.
func (uc *ExportAgenda) Execute(ctx context.Context) ([]ExportRecord, error) {
	agenda, err := uc.repo.Agenda(ctx)
	if err != nil {
		return nil, err
	}
	if len(agenda) == 0 {
		return nil, ErrNothingToExport
	}

	out := make([]ExportRecord, 0, len(agenda))
	for _, b := range agenda {
		out = append(out, ExportRecord{
			Numero: b.Numero,
			Nombre: b.Nombre,
			Fecha:  b.Fecha.Format(domain.DateLayout),
			Equipo: b.Equipo,
			Tipo:   string(b.Tipo),
		})
	}
	return out, nil
}
