package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/cache"
	dbpkg "github.com/BruksfildServices01/agenda-vacaciones/internal/db"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
)

func newRepo(t *testing.T, store tablestore.Store) *repository.AgendaRepository {
	t.Helper()
	return repository.NewAgendaRepository(store, cache.NewMemory(), time.Minute, time.Minute, zerolog.Nop())
}

func seededMemory(t *testing.T) *tablestore.Memory {
	t.Helper()
	m := tablestore.NewMemory()
	require.NoError(t, m.Seed(tablestore.TableEmployees,
		[]string{" 100 ", " Ana López ", " Ventas "},
		[]string{"200.0", "Luis", "Soporte"},
		[]string{"", "Sin número", "Ventas"},
		[]string{"300", "Marta", "Ventas"},
	))
	require.NoError(t, m.Seed(tablestore.TableAgenda,
		[]string{"100", "Ana López", "Ventas", "2025-06-10", "Vacaciones"},
		[]string{"200", "Luis", "Soporte", "2025-06-10 00:00:00", "Permiso"},
		[]string{"300", "Marta", "Ventas", "11/06/2025", "Sanción"},
		[]string{"300", "Marta", "Ventas", "mañana", "Vacaciones"},
	))
	return m
}

func TestEmployees_TrimsAndSkipsBlankNumero(t *testing.T) {
	repo := newRepo(t, seededMemory(t))

	emps, err := repo.Employees(context.Background())
	require.NoError(t, err)
	require.Len(t, emps, 3)
	assert.Equal(t, booking.Employee{Numero: "100", Nombre: "Ana López", Equipo: "Ventas"}, emps["100"])
	assert.Equal(t, "Luis", emps["200"].Nombre)

	emp, err := repo.FindEmployee(context.Background(), " 200 ")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "Soporte", emp.Equipo)

	missing, err := repo.FindEmployee(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTeams_SortedDistinct(t *testing.T) {
	repo := newRepo(t, seededMemory(t))

	teams, err := repo.Teams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Soporte", "Ventas"}, teams)
}

func TestAgenda_ParsesDateFormatsAndDropsBadRows(t *testing.T) {
	repo := newRepo(t, seededMemory(t))

	agenda, err := repo.Agenda(context.Background())
	require.NoError(t, err)
	require.Len(t, agenda, 3)

	want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, agenda[0].Fecha)
	assert.Equal(t, want, agenda[1].Fecha)
	assert.Equal(t, want.AddDate(0, 0, 1), agenda[2].Fecha)
	assert.Equal(t, booking.TipoSancion, agenda[2].Tipo)
}

func TestAgenda_ExcelSerialDate(t *testing.T) {
	m := tablestore.NewMemory()
	require.NoError(t, m.Seed(tablestore.TableAgenda,
		[]string{"1", "Ana", "Ventas", "45818", "Vacaciones"},
	))

	agenda, err := newRepo(t, m).Agenda(context.Background())
	require.NoError(t, err)
	require.Len(t, agenda, 1)
	assert.Equal(t, "2025-06-10", agenda[0].Fecha.Format(booking.DateLayout))
}

func TestAppendBooking_InvalidatesCache(t *testing.T) {
	m := seededMemory(t)
	repo := newRepo(t, m)
	ctx := context.Background()

	before, err := repo.Agenda(ctx)
	require.NoError(t, err)

	b := booking.Booking{
		Numero: "200", Nombre: "Luis", Equipo: "Soporte",
		Fecha: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Tipo: booking.TipoVacaciones,
	}
	require.NoError(t, repo.AppendBooking(ctx, b))

	after, err := repo.Agenda(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	raw := m.Rows(tablestore.TableAgenda)
	assert.Equal(t, []string{"200", "Luis", "Soporte", "2025-07-01", "Vacaciones"}, raw[len(raw)-1])
}

func TestRemoveBookings_RewritesWhenStoreCannotDelete(t *testing.T) {
	m := seededMemory(t)
	repo := newRepo(t, m)
	ctx := context.Background()

	agenda, err := repo.Agenda(ctx)
	require.NoError(t, err)

	kept, removed := booking.RemoveSelected(agenda, agenda[0].Fecha, []booking.RowKey{booking.KeyOf(agenda[0])})
	require.Len(t, removed, 1)
	require.NoError(t, repo.RemoveBookings(ctx, kept, removed))

	raw := m.Rows(tablestore.TableAgenda)
	require.Len(t, raw, 2)
	assert.Equal(t, "2025-06-10", raw[0][3])
	assert.Equal(t, "200", raw[0][0])

	after, err := repo.Agenda(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

type deletingStore struct {
	*tablestore.Memory
	deleted [][]string
	misses  bool
}

func (d *deletingStore) DeleteRows(_ context.Context, _ string, rows [][]string) (int, error) {
	d.deleted = append(d.deleted, rows...)
	if d.misses {
		return 0, nil
	}
	return len(rows), nil
}

func TestRemoveBookings_UsesRowDeleter(t *testing.T) {
	store := &deletingStore{Memory: seededMemory(t)}
	repo := newRepo(t, store)
	ctx := context.Background()

	agenda, err := repo.Agenda(ctx)
	require.NoError(t, err)

	kept, removed := booking.RemoveSelected(agenda, agenda[0].Fecha, []booking.RowKey{booking.KeyOf(agenda[1])})
	require.NoError(t, repo.RemoveBookings(ctx, kept, removed))

	require.Len(t, store.deleted, 1)
	assert.Equal(t, []string{"200", "Luis", "Soporte", "2025-06-10", "Permiso"}, store.deleted[0])
	assert.Len(t, store.Rows(tablestore.TableAgenda), 4)
}

func TestRemoveBookings_NothingRemovedSkipsWrite(t *testing.T) {
	store := &deletingStore{Memory: seededMemory(t)}
	repo := newRepo(t, store)

	require.NoError(t, repo.RemoveBookings(context.Background(), nil, nil))
	assert.Empty(t, store.deleted)
	assert.Len(t, store.Rows(tablestore.TableAgenda), 4)
}

func TestRemoveBookings_RewritesWhenTargetedDeleteMisses(t *testing.T) {
	store := &deletingStore{Memory: seededMemory(t), misses: true}
	repo := newRepo(t, store)
	ctx := context.Background()

	agenda, err := repo.Agenda(ctx)
	require.NoError(t, err)

	kept, removed := booking.RemoveSelected(agenda, agenda[0].Fecha, []booking.RowKey{booking.KeyOf(agenda[1])})
	require.Len(t, removed, 1)
	require.NoError(t, repo.RemoveBookings(ctx, kept, removed))

	require.Len(t, store.deleted, 1)
	raw := store.Rows(tablestore.TableAgenda)
	require.Len(t, raw, 2)
	assert.Equal(t, "100", raw[0][0])
	assert.Equal(t, "300", raw[1][0])
}

func TestRemoveBookings_GormRowsStoredInOtherFormats(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "agenda.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	store := tablestore.NewGorm(db)
	ctx := context.Background()
	for _, r := range [][]string{
		{"100", "Ana López", "Ventas", "2025-06-10", "Vacaciones"},
		{"300.0", " Marta ", "Ventas", "10/06/2025", "Sanción"},
		{"200", "Luis", "Soporte", "2025-06-10 00:00:00", "Permiso"},
	} {
		require.NoError(t, store.AppendRow(ctx, tablestore.TableAgenda, r))
	}

	repo := newRepo(t, store)
	agenda, err := repo.Agenda(ctx)
	require.NoError(t, err)
	require.Len(t, agenda, 3)

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	kept, removed := booking.RemoveSelected(agenda, day, []booking.RowKey{
		{Numero: "300", Nombre: "Marta", Equipo: "Ventas", Tipo: booking.TipoSancion},
	})
	require.Len(t, removed, 1)
	require.NoError(t, repo.RemoveBookings(ctx, kept, removed))

	after, err := repo.Agenda(ctx)
	require.NoError(t, err)
	require.Len(t, after, 2)
	for _, b := range after {
		assert.NotEqual(t, "300", b.Numero)
	}
}
