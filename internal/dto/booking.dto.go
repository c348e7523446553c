package dto

import "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"

type CreateBookingRequest struct {
	Fecha string `json:"fecha" binding:"required"`
	Tipo  string `json:"tipo" binding:"required"`
}

type DeleteBookingsRequest struct {
	Fecha string           `json:"fecha" binding:"required"`
	Rows  []booking.RowKey `json:"rows"`
}

type DeleteBookingsResponse struct {
	Fecha   string `json:"fecha"`
	Removed int    `json:"removed"`
}

// DayRowDTO é uma linha do detalhe do dia, com o rótulo usado na seleção do admin.
type DayRowDTO struct {
	Numero string         `json:"numero"`
	Nombre string         `json:"nombre"`
	Equipo string         `json:"equipo"`
	Fecha  string         `json:"fecha"`
	Tipo   booking.Tipo   `json:"tipo"`
	Key    booking.RowKey `json:"key"`
	Label  string         `json:"label"`
}

func DayRowsFrom(list []booking.Booking) []DayRowDTO {
	out := make([]DayRowDTO, 0, len(list))
	for _, b := range list {
		k := booking.KeyOf(b)
		out = append(out, DayRowDTO{
			Numero: b.Numero,
			Nombre: b.Nombre,
			Equipo: b.Equipo,
			Fecha:  b.Fecha.Format(booking.DateLayout),
			Tipo:   b.Tipo,
			Key:    k,
			Label:  k.String(),
		})
	}
	return out
}
