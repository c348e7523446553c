package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	uc "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

// WriteXLSX gera uma pasta com a aba "Agenda" e as mesmas colunas do CSV.
func WriteXLSX(w io.Writer, recs []uc.ExportRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := fields(r)
		row := make([]any, len(vals))
		for j, v := range vals {
			row[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "B", "B", 28); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func ReadXLSX(r io.Reader) ([]uc.ExportRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}
