package booking

import "time"

// ===============================
// Entities
// ===============================

// Employee é dado de referência: vem da tabela "empleados" e nunca é alterado aqui.
type Employee struct {
	Numero string `json:"numero"`
	Nombre string `json:"nombre"`
	Equipo string `json:"equipo"`
}

// Booking é uma linha da agenda. Fecha guarda apenas o dia (00:00 UTC).
type Booking struct {
	Numero string    `json:"numero"`
	Nombre string    `json:"nombre"`
	Equipo string    `json:"equipo"`
	Fecha  time.Time `json:"fecha"`
	Tipo   Tipo      `json:"tipo"`
}

const DateLayout = "2006-01-02"

// DateOf descarta hora e fuso, mantendo o dia de calendário.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

func NewBooking(emp Employee, fecha time.Time, tipo Tipo) Booking {
	return Booking{
		Numero: emp.Numero,
		Nombre: emp.Nombre,
		Equipo: emp.Equipo,
		Fecha:  DateOf(fecha),
		Tipo:   tipo,
	}
}

// BookingsOn devolve as linhas da agenda no mesmo dia, preservando a ordem.
func BookingsOn(date time.Time, agenda []Booking) []Booking {
	out := make([]Booking, 0, MaxPerDay)
	for _, b := range agenda {
		if SameDay(b.Fecha, date) {
			out = append(out, b)
		}
	}
	return out
}
