package tablestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// XLSX guarda cada tabela numa aba de uma pasta de trabalho local.
// O arquivo é aberto a cada operação para enxergar edições manuais.
type XLSX struct {
	path string
	mu   sync.Mutex
}

func NewXLSX(path string) *XLSX {
	return &XLSX{path: path}
}

func (x *XLSX) ReadTable(_ context.Context, name string) ([]Record, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	var recs []Record
	err := x.update(name, func(f *excelize.File) (bool, error) {
		rows, err := f.GetRows(name)
		if err != nil {
			return false, err
		}
		if len(rows) == 0 {
			return false, nil
		}
		recs = toRecords(rows[0], rows[1:])
		return false, nil
	})
	return recs, err
}

func (x *XLSX) AppendRow(_ context.Context, name string, values []string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	return x.update(name, func(f *excelize.File) (bool, error) {
		rows, err := f.GetRows(name)
		if err != nil {
			return false, err
		}
		if err := writeRow(f, name, len(rows)+1, values); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (x *XLSX) ClearAndWrite(_ context.Context, name string, header []string, rows [][]string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	return x.update(name, func(f *excelize.File) (bool, error) {
		existing, err := f.GetRows(name)
		if err != nil {
			return false, err
		}
		for i := len(existing); i >= 1; i-- {
			if err := f.RemoveRow(name, i); err != nil {
				return false, err
			}
		}

		if err := writeRow(f, name, 1, header); err != nil {
			return false, err
		}
		for i, r := range rows {
			if err := writeRow(f, name, i+2, r); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// update abre (ou cria) o arquivo, garante a aba e salva se fn alterou algo.
func (x *XLSX) update(name string, fn func(f *excelize.File) (bool, error)) error {
	header, err := HeaderOf(name)
	if err != nil {
		return err
	}

	f, created, err := x.open()
	if err != nil {
		return err
	}
	defer f.Close()

	dirty := created
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeRow(f, name, 1, header); err != nil {
			return err
		}
		if created {
			// a aba padrão de um arquivo novo não pertence a nenhuma tabela
			if err := f.DeleteSheet("Sheet1"); err != nil {
				return err
			}
		}
		dirty = true
	}

	changed, err := fn(f)
	if err != nil {
		return err
	}
	if !dirty && !changed {
		return nil
	}
	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("save %s: %w", x.path, err)
	}
	return nil
}

func (x *XLSX) open() (*excelize.File, bool, error) {
	f, err := excelize.OpenFile(x.path)
	if err == nil {
		return f, false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}
	if _, statErr := os.Stat(x.path); errors.Is(statErr, fs.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}
	return nil, false, fmt.Errorf("open %s: %w", x.path, err)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}

var _ Store = (*XLSX)(nil)
