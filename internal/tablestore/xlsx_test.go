package tablestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
)

func TestXLSX_Contract(t *testing.T) {
	exerciseStore(t, tablestore.NewXLSX(filepath.Join(t.TempDir(), "agenda.xlsx")))
}

func TestXLSX_CreatesSheetsWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.xlsx")
	s := tablestore.NewXLSX(path)
	ctx := context.Background()

	_, err := s.ReadTable(ctx, tablestore.TableEmployees)
	require.NoError(t, err)
	require.NoError(t, s.AppendRow(ctx, tablestore.TableAgenda,
		[]string{"10", "Ana", "Ventas", "2025-06-10", "Vacaciones"}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{tablestore.TableEmployees, tablestore.TableAgenda}, f.GetSheetList())

	rows, err := f.GetRows(tablestore.TableAgenda)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, tablestore.AgendaHeader, rows[0])
}
