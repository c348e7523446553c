package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
)

func inMonthCells(m booking.Month) []booking.Cell {
	var out []booking.Cell
	for _, w := range m.Weeks {
		for _, c := range w {
			if c.InMonth {
				out = append(out, c)
			}
		}
	}
	return out
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, booking.OccupancyNeutral, booking.ColorFor(0))
	assert.Equal(t, booking.OccupancyLow, booking.ColorFor(1))
	assert.Equal(t, booking.OccupancyMedium, booking.ColorFor(2))
	assert.Equal(t, booking.OccupancyFull, booking.ColorFor(3))
	assert.Equal(t, booking.OccupancyFull, booking.ColorFor(7))
}

func TestBuildMonth_GridStartsOnMonday(t *testing.T) {
	// junho de 2025 começa num domingo: 6 células de padding.
	m := booking.BuildMonth(2025, time.June, nil, "", false)

	require.NotEmpty(t, m.Weeks)
	for _, w := range m.Weeks {
		assert.Len(t, w, 7)
	}

	first := m.Weeks[0]
	for i := 0; i < 6; i++ {
		assert.False(t, first[i].InMonth)
		assert.Zero(t, first[i].Day)
	}
	assert.True(t, first[6].InMonth)
	assert.Equal(t, 1, first[6].Day)

	cells := inMonthCells(m)
	assert.Len(t, cells, 30)
	assert.Equal(t, 30, cells[len(cells)-1].Day)
	assert.Equal(t, "Lun", m.Weekdays[0])
}

func TestBuildMonth_CountsAndColors(t *testing.T) {
	agenda := []booking.Booking{
		row(t, "1", "Ventas", "2025-06-02"),
		row(t, "2", "Ventas", "2025-06-03"),
		row(t, "3", "Soporte", "2025-06-03"),
		row(t, "4", "Ventas", "2025-06-04"),
		row(t, "5", "Soporte", "2025-06-04"),
		row(t, "6", "Legal", "2025-06-04"),
		row(t, "7", "Legal", "2025-07-04"),
	}

	m := booking.BuildMonth(2025, time.June, agenda, booking.TeamAll, false)
	byDay := map[int]booking.Cell{}
	for _, c := range inMonthCells(m) {
		byDay[c.Day] = c
		assert.Equal(t, booking.ColorFor(c.TotalCount), c.Color)
		assert.False(t, c.TeamMarked)
	}

	assert.Equal(t, 1, byDay[2].TotalCount)
	assert.Equal(t, booking.OccupancyLow, byDay[2].Color)
	assert.Equal(t, booking.OccupancyMedium, byDay[3].Color)
	assert.Equal(t, booking.OccupancyFull, byDay[4].Color)
	assert.Equal(t, booking.OccupancyNeutral, byDay[5].Color)
	assert.Equal(t, booking.TeamAll, m.Team)
}

func TestBuildMonth_TeamFilterMarksDays(t *testing.T) {
	agenda := []booking.Booking{
		row(t, "1", "Ventas", "2025-06-02"),
		row(t, "2", "Soporte", "2025-06-03"),
	}

	m := booking.BuildMonth(2025, time.June, agenda, "Ventas", false)
	for _, c := range inMonthCells(m) {
		switch c.Day {
		case 2:
			assert.Equal(t, 1, c.TeamCount)
			assert.True(t, c.TeamMarked)
		case 3:
			assert.Equal(t, 1, c.TotalCount)
			assert.Zero(t, c.TeamCount)
			assert.False(t, c.TeamMarked)
		}
	}
	assert.Equal(t, "Ventas", m.Team)
}

func TestBuildMonth_OnlyFullHidesOthers(t *testing.T) {
	agenda := []booking.Booking{
		row(t, "1", "A", "2025-06-04"),
		row(t, "2", "B", "2025-06-04"),
		row(t, "3", "C", "2025-06-04"),
		row(t, "4", "A", "2025-06-05"),
	}

	m := booking.BuildMonth(2025, time.June, agenda, "", true)
	for _, c := range inMonthCells(m) {
		if c.Day == 4 {
			assert.False(t, c.Hidden)
		} else {
			assert.True(t, c.Hidden, "day %d", c.Day)
		}
	}
}

func TestBuildMonth_LeapFebruary(t *testing.T) {
	m := booking.BuildMonth(2024, time.February, nil, "", false)
	assert.Len(t, inMonthCells(m), 29)
}

func TestDayDetail_SortsAndFilters(t *testing.T) {
	a := row(t, "1", "Soporte", "2025-06-10")
	a.Nombre = "Zoe"
	b := row(t, "2", "Soporte", "2025-06-10")
	b.Nombre = "Ana"
	c := row(t, "3", "Legal", "2025-06-10")
	other := row(t, "4", "Legal", "2025-06-11")

	agenda := []booking.Booking{a, b, c, other}
	d := a.Fecha

	all := booking.DayDetail(d, agenda, booking.TeamAll)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].Numero)
	assert.Equal(t, "Ana", all[1].Nombre)
	assert.Equal(t, "Zoe", all[2].Nombre)

	soporte := booking.DayDetail(d, agenda, "Soporte")
	assert.Len(t, soporte, 2)
	assert.Len(t, agenda, 4)
}

func TestTeamFilter_IgnoresSurroundingSpaces(t *testing.T) {
	agenda := []booking.Booking{
		row(t, "1", "Ventas", "2025-06-02"),
		row(t, "2", "Soporte", "2025-06-02"),
	}

	m := booking.BuildMonth(2025, time.June, agenda, " Ventas ", false)
	assert.Equal(t, "Ventas", m.Team)
	for _, c := range inMonthCells(m) {
		if c.Day == 2 {
			assert.Equal(t, 1, c.TeamCount)
			assert.True(t, c.TeamMarked)
		}
	}

	detail := booking.DayDetail(agenda[0].Fecha, agenda, "Ventas ")
	require.Len(t, detail, 1)
	assert.Equal(t, "1", detail[0].Numero)
}
