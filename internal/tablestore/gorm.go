package tablestore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/models"
)

// Gorm guarda as duas tabelas no Postgres, mantendo a ordem de inserção pelo ID.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) ReadTable(ctx context.Context, name string) ([]Record, error) {
	header, err := HeaderOf(name)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch name {
	case TableEmployees:
		var list []models.EmployeeRow
		if err := g.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
			return nil, err
		}
		for _, e := range list {
			rows = append(rows, []string{e.Numero, e.Nombre, e.Equipo})
		}
	case TableAgenda:
		var list []models.AgendaRow
		if err := g.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
			return nil, err
		}
		for _, a := range list {
			rows = append(rows, []string{a.Numero, a.Nombre, a.Equipo, a.Fecha, a.Tipo})
		}
	}
	return toRecords(header, rows), nil
}

func (g *Gorm) AppendRow(ctx context.Context, name string, values []string) error {
	m, err := modelFor(name, values)
	if err != nil {
		return err
	}
	return g.db.WithContext(ctx).Create(m).Error
}

func (g *Gorm) ClearAndWrite(ctx context.Context, name string, header []string, rows [][]string) error {
	if err := checkHeader(name, header); err != nil {
		return err
	}

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		empty, _ := modelFor(name, nil)
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(empty).Error; err != nil {
			return err
		}
		for _, r := range rows {
			m, err := modelFor(name, r)
			if err != nil {
				return err
			}
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteRows apaga uma ocorrência por linha pedida, comparando o texto gravado.
// Linhas ausentes não contam no total devolvido.
func (g *Gorm) DeleteRows(ctx context.Context, name string, rows [][]string) (int, error) {
	if _, err := HeaderOf(name); err != nil {
		return 0, err
	}

	deleted := 0
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted = 0
		for _, r := range rows {
			empty, _ := modelFor(name, nil)

			var ids []uint
			if err := tx.Model(empty).Where(columnsFor(name, r)).Order("id ASC").Limit(1).Pluck("id", &ids).Error; err != nil {
				return err
			}
			if len(ids) == 0 {
				continue
			}

			if err := tx.Delete(empty, ids[0]).Error; err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func modelFor(name string, values []string) (any, error) {
	v := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}

	switch name {
	case TableEmployees:
		return &models.EmployeeRow{Numero: v(0), Nombre: v(1), Equipo: v(2)}, nil
	case TableAgenda:
		return &models.AgendaRow{Numero: v(0), Nombre: v(1), Equipo: v(2), Fecha: v(3), Tipo: v(4)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}

// columnsFor monta a condição exata, inclusive para campos vazios.
func columnsFor(name string, values []string) map[string]any {
	header, _ := HeaderOf(name)
	cond := make(map[string]any, len(header))
	for i, h := range header {
		if i < len(values) {
			cond[h] = values[i]
		} else {
			cond[h] = ""
		}
	}
	return cond
}

func checkHeader(name string, header []string) error {
	want, err := HeaderOf(name)
	if err != nil {
		return err
	}
	if !sameRow(want, header) {
		return fmt.Errorf("tablestore: header %v does not match table %q", header, name)
	}
	return nil
}

var (
	_ Store      = (*Gorm)(nil)
	_ RowDeleter = (*Gorm)(nil)
)
