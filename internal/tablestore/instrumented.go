package tablestore

import (
	"context"
	"time"
)

// Observer recebe a duração de cada operação no store.
type Observer interface {
	ObserveStore(table, op string, d time.Duration, err error)
}

type instrumented struct {
	inner Store
	obs   Observer
}

type instrumentedDeleter struct {
	*instrumented
	deleter RowDeleter
}

// WithObserver mede as operações preservando a capacidade de delete pontual.
func WithObserver(s Store, obs Observer) Store {
	if obs == nil {
		return s
	}
	in := &instrumented{inner: s, obs: obs}
	if d, ok := s.(RowDeleter); ok {
		return &instrumentedDeleter{instrumented: in, deleter: d}
	}
	return in
}

func (i *instrumented) ReadTable(ctx context.Context, name string) ([]Record, error) {
	start := time.Now()
	recs, err := i.inner.ReadTable(ctx, name)
	i.obs.ObserveStore(name, "read", time.Since(start), err)
	return recs, err
}

func (i *instrumented) AppendRow(ctx context.Context, name string, values []string) error {
	start := time.Now()
	err := i.inner.AppendRow(ctx, name, values)
	i.obs.ObserveStore(name, "append", time.Since(start), err)
	return err
}

func (i *instrumented) ClearAndWrite(ctx context.Context, name string, header []string, rows [][]string) error {
	start := time.Now()
	err := i.inner.ClearAndWrite(ctx, name, header, rows)
	i.obs.ObserveStore(name, "replace", time.Since(start), err)
	return err
}

func (i *instrumentedDeleter) DeleteRows(ctx context.Context, name string, rows [][]string) (int, error) {
	start := time.Now()
	n, err := i.deleter.DeleteRows(ctx, name, rows)
	i.obs.ObserveStore(name, "delete", time.Since(start), err)
	return n, err
}
