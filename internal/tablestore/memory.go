package tablestore

import (
	"context"
	"sync"
)

type memTable struct {
	header []string
	rows   [][]string
}

// Memory guarda as tabelas no processo. Usado em testes e em desenvolvimento.
type Memory struct {
	mu     sync.RWMutex
	tables map[string]*memTable
}

func NewMemory() *Memory {
	return &Memory{tables: map[string]*memTable{}}
}

// Seed substitui o conteúdo de uma tabela usando o cabeçalho padrão.
func (m *Memory) Seed(name string, rows ...[]string) error {
	header, err := HeaderOf(name)
	if err != nil {
		return err
	}
	return m.ClearAndWrite(context.Background(), name, header, rows)
}

func (m *Memory) table(name string) (*memTable, error) {
	if t, ok := m.tables[name]; ok {
		return t, nil
	}
	header, err := HeaderOf(name)
	if err != nil {
		return nil, err
	}
	t := &memTable{header: header}
	m.tables[name] = t
	return t, nil
}

func (m *Memory) ReadTable(_ context.Context, name string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(name)
	if err != nil {
		return nil, err
	}
	return toRecords(t.header, t.rows), nil
}

func (m *Memory) AppendRow(_ context.Context, name string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.table(name)
	if err != nil {
		return err
	}
	t.rows = append(t.rows, copyRow(values))
	return nil
}

func (m *Memory) ClearAndWrite(_ context.Context, name string, header []string, rows [][]string) error {
	if _, err := HeaderOf(name); err != nil {
		return err
	}

	cp := make([][]string, 0, len(rows))
	for _, r := range rows {
		cp = append(cp, copyRow(r))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[name] = &memTable{header: copyRow(header), rows: cp}
	return nil
}

// Rows devolve uma cópia crua da tabela (sem cabeçalho).
func (m *Memory) Rows(name string) [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[name]
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, copyRow(r))
	}
	return out
}

var _ Store = (*Memory)(nil)
