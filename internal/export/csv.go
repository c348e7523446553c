// Package export gera os arquivos baixados pelo admin.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	uc "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

var Columns = []string{"numero", "nombre", "fecha", "equipo", "tipo"}

const (
	CSVFileName  = "agenda_vacaciones.csv"
	XLSXFileName = "agenda_vacaciones.xlsx"
	SheetName    = "Agenda"
)

func fields(r uc.ExportRecord) []string {
	return []string{r.Numero, r.Nombre, r.Fecha, r.Equipo, r.Tipo}
}

func fromFields(f []string) uc.ExportRecord {
	get := func(i int) string {
		if i < len(f) {
			return strings.TrimSpace(f[i])
		}
		return ""
	}
	return uc.ExportRecord{Numero: get(0), Nombre: get(1), Fecha: get(2), Equipo: get(3), Tipo: get(4)}
}

func WriteCSV(w io.Writer, recs []uc.ExportRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(fields(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ReadCSV(r io.Reader) ([]uc.ExportRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) ([]uc.ExportRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("export: missing header")
	}
	out := make([]uc.ExportRecord, 0, len(rows)-1)
	for _, r := range rows[1:] {
		out = append(out, fromFields(r))
	}
	return out, nil
}
