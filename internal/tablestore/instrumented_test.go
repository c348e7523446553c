package tablestore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
)

type recordingObserver struct {
	ops []string
}

func (r *recordingObserver) ObserveStore(table, op string, _ time.Duration, _ error) {
	r.ops = append(r.ops, table+":"+op)
}

type deletingStore struct {
	*tablestore.Memory
	deleted [][]string
}

func (d *deletingStore) DeleteRows(_ context.Context, _ string, rows [][]string) (int, error) {
	d.deleted = append(d.deleted, rows...)
	return len(rows), nil
}

func TestWithObserver_RecordsOperations(t *testing.T) {
	obs := &recordingObserver{}
	s := tablestore.WithObserver(tablestore.NewMemory(), obs)
	ctx := context.Background()

	_, err := s.ReadTable(ctx, tablestore.TableAgenda)
	require.NoError(t, err)
	require.NoError(t, s.AppendRow(ctx, tablestore.TableAgenda, []string{"1", "Ana", "Ventas", "2025-06-10", "Vacaciones"}))
	require.NoError(t, s.ClearAndWrite(ctx, tablestore.TableAgenda, tablestore.AgendaHeader, nil))

	assert.Equal(t, []string{"agenda:read", "agenda:append", "agenda:replace"}, obs.ops)

	_, ok := tablestore.AsRowDeleter(s)
	assert.False(t, ok)
}

func TestWithObserver_KeepsRowDeleter(t *testing.T) {
	obs := &recordingObserver{}
	inner := &deletingStore{Memory: tablestore.NewMemory()}
	s := tablestore.WithObserver(inner, obs)

	d, ok := tablestore.AsRowDeleter(s)
	require.True(t, ok)
	n, err := d.DeleteRows(context.Background(), tablestore.TableAgenda, [][]string{{"1"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Len(t, inner.deleted, 1)
	assert.Equal(t, []string{"agenda:delete"}, obs.ops)
}
