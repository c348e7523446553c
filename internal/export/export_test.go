package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/export"
	uc "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

var sample = []uc.ExportRecord{
	{Numero: "100", Nombre: "Ana López", Fecha: "2025-06-10", Equipo: "Ventas", Tipo: "Vacaciones"},
	{Numero: "200", Nombre: "Peña, Luis", Fecha: "2025-06-10", Equipo: "Soporte", Tipo: "Sanción"},
	{Numero: "007", Nombre: "Marta", Fecha: "2025-12-31", Equipo: "Legal", Tipo: "Permiso"},
}

func TestCSV_HeaderAndRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sample))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("numero,nombre,fecha,equipo,tipo\n")))

	got, err := export.ReadCSV(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestXLSX_SheetAndRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sample))

	got, err := export.ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestCalendarPDF(t *testing.T) {
	agenda := []domain.Booking{
		{Numero: "1", Nombre: "Ana", Equipo: "Ventas", Fecha: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Tipo: domain.TipoVacaciones},
	}
	m := domain.BuildMonth(2025, time.June, agenda, "Ventas", false)

	b, err := export.CalendarPDF(m)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
