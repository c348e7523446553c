package tablestore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
)

// exerciseStore roda o mesmo contrato contra qualquer backend.
func exerciseStore(t *testing.T, s tablestore.Store) {
	t.Helper()
	ctx := context.Background()

	recs, err := s.ReadTable(ctx, tablestore.TableAgenda)
	require.NoError(t, err)
	assert.Empty(t, recs)

	require.NoError(t, s.AppendRow(ctx, tablestore.TableAgenda,
		[]string{"10", "Ana", "Ventas", "2025-06-10", "Vacaciones"}))
	require.NoError(t, s.AppendRow(ctx, tablestore.TableAgenda,
		[]string{"20", "Luis", "Soporte", "2025-06-10", "Permiso"}))

	recs, err = s.ReadTable(ctx, tablestore.TableAgenda)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Ana", recs[0]["nombre"])
	assert.Equal(t, "2025-06-10", recs[0]["fecha"])
	assert.Equal(t, "Permiso", recs[1]["tipo"])

	require.NoError(t, s.ClearAndWrite(ctx, tablestore.TableAgenda, tablestore.AgendaHeader,
		[][]string{{"20", "Luis", "Soporte", "2025-06-10", "Permiso"}}))

	recs, err = s.ReadTable(ctx, tablestore.TableAgenda)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "20", recs[0]["numero"])

	require.NoError(t, s.ClearAndWrite(ctx, tablestore.TableAgenda, tablestore.AgendaHeader, nil))
	recs, err = s.ReadTable(ctx, tablestore.TableAgenda)
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = s.ReadTable(ctx, "nominas")
	assert.ErrorIs(t, err, tablestore.ErrUnknownTable)
}

func TestMemory_Contract(t *testing.T) {
	exerciseStore(t, tablestore.NewMemory())
}

func TestMemory_SkipsBlankRowsAndPadsShortOnes(t *testing.T) {
	m := tablestore.NewMemory()
	require.NoError(t, m.Seed(tablestore.TableEmployees,
		[]string{"1", "Ana", "Ventas"},
		[]string{"", " ", ""},
		[]string{"2", "Luis"},
	))

	recs, err := m.ReadTable(context.Background(), tablestore.TableEmployees)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "", recs[1]["equipo"])
}

func TestMemory_IsNotRowDeleter(t *testing.T) {
	_, ok := tablestore.AsRowDeleter(tablestore.NewMemory())
	assert.False(t, ok)
}
