package booking

import (
	"strings"
	"time"
)

// RowKey identifica uma linha dentro de um dia: a agenda não tem ID próprio.
type RowKey struct {
	Numero string `json:"numero"`
	Nombre string `json:"nombre"`
	Equipo string `json:"equipo"`
	Tipo   Tipo   `json:"tipo"`
}

func KeyOf(b Booking) RowKey {
	return RowKey{Numero: b.Numero, Nombre: b.Nombre, Equipo: b.Equipo, Tipo: b.Tipo}
}

// String segue o rótulo exibido na lista de seleção do admin.
func (k RowKey) String() string {
	return strings.Join([]string{k.Numero, k.Nombre, k.Equipo, string(k.Tipo)}, " · ")
}

// Normalize apara os campos e troca o tipo pela forma canônica
// ("sancion" vira Sanción). Tipo desconhecido fica como veio.
func (k RowKey) Normalize() RowKey {
	out := RowKey{
		Numero: strings.TrimSpace(k.Numero),
		Nombre: strings.TrimSpace(k.Nombre),
		Equipo: strings.TrimSpace(k.Equipo),
		Tipo:   Tipo(strings.TrimSpace(string(k.Tipo))),
	}
	if t, err := ParseTipo(string(k.Tipo)); err == nil {
		out.Tipo = t
	}
	return out
}

// RemoveSelected separa as linhas do dia indicado cuja chave está na seleção.
// Linhas de outros dias nunca são tocadas. As chaves são comparadas já normalizadas.
func RemoveSelected(agenda []Booking, date time.Time, keys []RowKey) (kept, removed []Booking) {
	selected := make(map[RowKey]struct{}, len(keys))
	for _, k := range keys {
		selected[k.Normalize()] = struct{}{}
	}

	kept = make([]Booking, 0, len(agenda))
	for _, b := range agenda {
		if SameDay(b.Fecha, date) {
			if _, ok := selected[KeyOf(b).Normalize()]; ok {
				removed = append(removed, b)
				continue
			}
		}
		kept = append(kept, b)
	}
	return kept, removed
}
