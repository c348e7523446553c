package booking

import "context"

type Repository interface {
	// -------- Empleados --------
	Employees(
		ctx context.Context,
	) (map[string]Employee, error)

	FindEmployee(
		ctx context.Context,
		numero string,
	) (*Employee, error)

	Teams(
		ctx context.Context,
	) ([]string, error)

	// -------- Agenda --------
	Agenda(
		ctx context.Context,
	) ([]Booking, error)

	AppendBooking(
		ctx context.Context,
		b Booking,
	) error

	// RemoveBookings grava a agenda sem as linhas removidas.
	// kept é a agenda completa restante, removed as linhas apagadas.
	RemoveBookings(
		ctx context.Context,
		kept []Booking,
		removed []Booking,
	) error
}
