package export

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	domain "github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
)

var meses = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// 7 colunas de largura 2
const gridSize = 14

var (
	colorTitle  = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorBorder = &props.Color{Red: 206, Green: 212, Blue: 218}
	colorTeam   = &props.Color{Red: 52, Green: 73, Blue: 94}
)

var occupancyColors = map[domain.Occupancy]*props.Color{
	domain.OccupancyNeutral: {Red: 233, Green: 236, Blue: 239},
	domain.OccupancyLow:     {Red: 46, Green: 204, Blue: 113},
	domain.OccupancyMedium:  {Red: 241, Green: 196, Blue: 15},
	domain.OccupancyFull:    {Red: 231, Green: 76, Blue: 60},
}

// CalendarPDF desenha o mês com as mesmas cores da tela.
func CalendarPDF(m domain.Month) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda de vacaciones", true).
		Build()

	mt := maroto.New(cfg)

	mt.AddRows(titleRow(m))
	mt.AddRows(line.NewRow(1, props.Line{Color: colorBorder, Thickness: 0.3}))
	mt.AddRows(weekdayRow(m.Weekdays))
	for _, w := range m.Weeks {
		mt.AddRows(weekRow(w))
	}
	mt.AddRows(row.New(4))
	mt.AddRows(legendRow())

	doc, err := mt.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate calendar: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(m domain.Month) core.Row {
	title := fmt.Sprintf("%s %d", meses[m.Month-1], m.Year)
	sub := "Equipo: " + m.Team
	if m.OnlyFull {
		sub += "  |  Solo días llenos"
	}

	return row.New(16).Add(
		col.New(gridSize).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 16, Color: colorTitle, Top: 1}),
			text.New(sub, props.Text{Size: 9, Top: 10, Color: colorTeam}),
		),
	)
}

func weekdayRow(days []string) core.Row {
	cols := make([]core.Col, 0, len(days))
	for _, d := range days {
		cols = append(cols, col.New(2).Add(text.New(d, props.Text{
			Style: fontstyle.Bold, Align: align.Center, Top: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func weekRow(week []domain.Cell) core.Row {
	cols := make([]core.Col, 0, len(week))
	for _, c := range week {
		if !c.InMonth {
			cols = append(cols, col.New(2))
			continue
		}

		bg := occupancyColors[c.Color]
		if c.Hidden {
			bg = occupancyColors[domain.OccupancyNeutral]
		}

		comps := []core.Component{
			text.New(strconv.Itoa(c.Day), props.Text{Style: fontstyle.Bold, Size: 11, Left: 2, Top: 2}),
		}
		if !c.Hidden {
			comps = append(comps, text.New(fmt.Sprintf("%d/%d", c.TotalCount, domain.MaxPerDay), props.Text{
				Size: 8, Align: align.Right, Right: 2, Top: 2,
			}))
		}
		if c.TeamMarked {
			comps = append(comps, text.New("* equipo", props.Text{
				Size: 7, Left: 2, Top: 12, Color: colorTeam,
			}))
		}

		cols = append(cols, col.New(2).Add(comps...).WithStyle(&props.Cell{
			BackgroundColor: bg,
			BorderType:      border.Full,
			BorderColor:     colorBorder,
		}))
	}
	return row.New(20).Add(cols...)
}

func legendRow() core.Row {
	item := func(o domain.Occupancy, label string) core.Col {
		return col.New(3).Add(text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1})).
			WithStyle(&props.Cell{BackgroundColor: occupancyColors[o]})
	}
	return row.New(6).Add(
		item(domain.OccupancyNeutral, "Sin registros"),
		item(domain.OccupancyLow, "1 persona"),
		item(domain.OccupancyMedium, "2 personas"),
		item(domain.OccupancyFull, "Lleno (3)"),
	)
}
