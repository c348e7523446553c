package tablestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/agenda-vacaciones/internal/db"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
)

func openGorm(t *testing.T) *tablestore.Gorm {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "agenda.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return tablestore.NewGorm(db)
}

func agendaRows(t *testing.T, s tablestore.Store) [][]string {
	t.Helper()
	recs, err := s.ReadTable(context.Background(), tablestore.TableAgenda)
	require.NoError(t, err)

	out := make([][]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, []string{r["numero"], r["nombre"], r["equipo"], r["fecha"], r["tipo"]})
	}
	return out
}

func TestGorm_Contract(t *testing.T) {
	exerciseStore(t, openGorm(t))
}

func TestGorm_IsRowDeleter(t *testing.T) {
	_, ok := tablestore.AsRowDeleter(openGorm(t))
	assert.True(t, ok)
}

func TestGorm_EmployeesKeepInsertionOrder(t *testing.T) {
	g := openGorm(t)
	ctx := context.Background()

	require.NoError(t, g.ClearAndWrite(ctx, tablestore.TableEmployees, tablestore.EmployeesHeader, [][]string{
		{"300", "Marta", "Ventas"},
		{"100", "Ana", "Ventas"},
		{"200", "Luis", "Soporte"},
	}))

	recs, err := g.ReadTable(ctx, tablestore.TableEmployees)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "300", recs[0]["numero"])
	assert.Equal(t, "100", recs[1]["numero"])
	assert.Equal(t, "Soporte", recs[2]["equipo"])
}

func TestGorm_ClearAndWriteRejectsForeignHeader(t *testing.T) {
	g := openGorm(t)
	ctx := context.Background()

	ana := []string{"10", "Ana", "Ventas", "2025-06-10", "Vacaciones"}
	require.NoError(t, g.AppendRow(ctx, tablestore.TableAgenda, ana))

	err := g.ClearAndWrite(ctx, tablestore.TableAgenda, []string{"numero", "fecha"}, nil)
	require.Error(t, err)
	assert.Equal(t, [][]string{ana}, agendaRows(t, g))
}

func TestGorm_DeleteRowsRemovesOneOccurrencePerRow(t *testing.T) {
	g := openGorm(t)
	ctx := context.Background()

	ana := []string{"10", "Ana", "Ventas", "2025-06-10", "Vacaciones"}
	luis := []string{"20", "Luis", "Soporte", "2025-06-10", "Permiso"}
	for _, r := range [][]string{ana, luis, ana} {
		require.NoError(t, g.AppendRow(ctx, tablestore.TableAgenda, r))
	}

	n, err := g.DeleteRows(ctx, tablestore.TableAgenda, [][]string{ana})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, [][]string{luis, ana}, agendaRows(t, g))

	// só resta uma cópia: o segundo pedido não encontra nada
	n, err = g.DeleteRows(ctx, tablestore.TableAgenda, [][]string{ana, ana})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, [][]string{luis}, agendaRows(t, g))
}

func TestGorm_DeleteRowsCountsOnlyExactMatches(t *testing.T) {
	g := openGorm(t)
	ctx := context.Background()

	stored := []string{"300.0", "Marta", "Ventas", "10/06/2025", "Sanción"}
	require.NoError(t, g.AppendRow(ctx, tablestore.TableAgenda, stored))

	n, err := g.DeleteRows(ctx, tablestore.TableAgenda,
		[][]string{{"300", "Marta", "Ventas", "2025-06-10", "Sanción"}})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, [][]string{stored}, agendaRows(t, g))
}
