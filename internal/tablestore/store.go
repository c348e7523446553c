// Package tablestore é o cliente fino da planilha remota: tabelas nomeadas,
// cabeçalho na primeira linha e valores sempre como texto.
package tablestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	TableEmployees = "empleados"
	TableAgenda    = "agenda"
)

var (
	EmployeesHeader = []string{"numero", "nombre", "equipo"}
	AgendaHeader    = []string{"numero", "nombre", "equipo", "fecha", "tipo"}
)

var ErrUnknownTable = errors.New("tablestore: unknown table")

// Record é uma linha indexada pelo cabeçalho.
type Record map[string]string

type Store interface {
	ReadTable(ctx context.Context, name string) ([]Record, error)
	AppendRow(ctx context.Context, name string, values []string) error
	ClearAndWrite(ctx context.Context, name string, header []string, rows [][]string) error
}

// RowDeleter é opcional: backends que conseguem apagar linhas pontuais
// evitam a regravação completa da tabela. Devolve quantas linhas apagou;
// linhas sem correspondência exata não contam.
type RowDeleter interface {
	DeleteRows(ctx context.Context, name string, rows [][]string) (int, error)
}

func AsRowDeleter(s Store) (RowDeleter, bool) {
	d, ok := s.(RowDeleter)
	return d, ok
}

func HeaderOf(name string) ([]string, error) {
	switch name {
	case TableEmployees:
		return EmployeesHeader, nil
	case TableAgenda:
		return AgendaHeader, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}

// toRecords ignora linhas completamente vazias, como a leitura da planilha.
func toRecords(header []string, rows [][]string) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if isBlank(r) {
			continue
		}
		rec := make(Record, len(header))
		for i, h := range header {
			key := strings.ToLower(strings.TrimSpace(h))
			if i < len(r) {
				rec[key] = r[i]
			} else {
				rec[key] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func sameRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyRow(r []string) []string {
	return append([]string(nil), r...)
}
