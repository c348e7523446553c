package booking

import (
	"strings"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
)

// ===============================
// Tipo de ausência
// ===============================

type Tipo string

const (
	TipoVacaciones Tipo = "Vacaciones"
	TipoPermiso    Tipo = "Permiso"
	TipoSancion    Tipo = "Sanción"
)

func Tipos() []Tipo {
	return []Tipo{TipoVacaciones, TipoPermiso, TipoSancion}
}

// ParseTipo aceita o valor sem acento e em qualquer caixa ("sancion", "PERMISO").
func ParseTipo(s string) (Tipo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vacaciones":
		return TipoVacaciones, nil
	case "permiso":
		return TipoPermiso, nil
	case "sanción", "sancion":
		return TipoSancion, nil
	}
	return "", httperr.ErrBusiness("invalid_tipo")
}
