package booking

import (
	"sort"
	"strings"
	"time"
)

// ===============================
// Ocupação
// ===============================

type Occupancy string

const (
	OccupancyNeutral Occupancy = "neutral"
	OccupancyLow     Occupancy = "low"
	OccupancyMedium  Occupancy = "medium"
	OccupancyFull    Occupancy = "full"
)

// TeamAll desliga o filtro de equipe.
const TeamAll = "Todos"

func ColorFor(count int) Occupancy {
	switch {
	case count <= 0:
		return OccupancyNeutral
	case count == 1:
		return OccupancyLow
	case count == 2:
		return OccupancyMedium
	default:
		return OccupancyFull
	}
}

// Hex usado pelos exportadores gráficos.
func (o Occupancy) Hex() string {
	switch o {
	case OccupancyLow:
		return "#2ecc71"
	case OccupancyMedium:
		return "#f1c40f"
	case OccupancyFull:
		return "#e74c3c"
	default:
		return "#e9ecef"
	}
}

func IsTeamFilter(team string) bool {
	t := strings.TrimSpace(team)
	return t != "" && !strings.EqualFold(t, TeamAll)
}

// ===============================
// Grade mensal
// ===============================

type Cell struct {
	Day        int       `json:"day"`
	InMonth    bool      `json:"in_month"`
	TotalCount int       `json:"total_count"`
	TeamCount  int       `json:"team_count"`
	Color      Occupancy `json:"color"`
	TeamMarked bool      `json:"team_marked"`
	Hidden     bool      `json:"hidden"`
}

type Month struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Team     string   `json:"team"`
	OnlyFull bool     `json:"only_full"`
	Weekdays []string `json:"weekdays"`
	Weeks    [][]Cell `json:"weeks"`
}

var Weekdays = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// BuildMonth monta a grade de 7 colunas com a semana começando na segunda.
// Células fora do mês ficam em branco (InMonth=false).
func BuildMonth(year int, month time.Month, agenda []Booking, team string, onlyFull bool) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	team = strings.TrimSpace(team)
	filter := IsTeamFilter(team)

	total := make(map[int]int, daysIn)
	byTeam := make(map[int]int, daysIn)
	for _, b := range agenda {
		if b.Fecha.Year() != year || b.Fecha.Month() != month {
			continue
		}
		d := b.Fecha.Day()
		total[d]++
		if filter && b.Equipo == team {
			byTeam[d]++
		}
	}

	offset := (int(first.Weekday()) + 6) % 7
	cells := make([]Cell, 0, 42)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Color: OccupancyNeutral})
	}
	for d := 1; d <= daysIn; d++ {
		c := Cell{
			Day:        d,
			InMonth:    true,
			TotalCount: total[d],
			TeamCount:  byTeam[d],
			Color:      ColorFor(total[d]),
		}
		c.TeamMarked = filter && c.TeamCount > 0
		c.Hidden = onlyFull && c.TotalCount < MaxPerDay
		cells = append(cells, c)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{Color: OccupancyNeutral})
	}

	weeks := make([][]Cell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	if !filter {
		team = TeamAll
	}

	return Month{
		Year:     year,
		Month:    int(month),
		Team:     team,
		OnlyFull: onlyFull,
		Weekdays: Weekdays,
		Weeks:    weeks,
	}
}

// DayDetail lista os registros do dia, ordenados por equipe e nome.
func DayDetail(date time.Time, agenda []Booking, team string) []Booking {
	out := BookingsOn(date, agenda)
	team = strings.TrimSpace(team)
	if IsTeamFilter(team) {
		filtered := out[:0]
		for _, b := range out {
			if b.Equipo == team {
				filtered = append(filtered, b)
			}
		}
		out = filtered
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Equipo != out[j].Equipo {
			return out[i].Equipo < out[j].Equipo
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out
}
