package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/cache"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
)

// formatos aceitos na coluna fecha; a planilha mistura texto e data
var fechaLayouts = []string{
	booking.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
}

type AgendaRepository struct {
	store        tablestore.Store
	cache        cache.Cache
	employeesTTL time.Duration
	agendaTTL    time.Duration
	log          zerolog.Logger
}

func NewAgendaRepository(
	store tablestore.Store,
	c cache.Cache,
	employeesTTL, agendaTTL time.Duration,
	log zerolog.Logger,
) *AgendaRepository {
	return &AgendaRepository{
		store:        store,
		cache:        c,
		employeesTTL: employeesTTL,
		agendaTTL:    agendaTTL,
		log:          log.With().Str("component", "agenda_repository").Logger(),
	}
}

// --------------------------------------------------
// Empleados
// --------------------------------------------------

func (r *AgendaRepository) Employees(ctx context.Context) (map[string]booking.Employee, error) {
	return cache.Load(ctx, r.cache, cache.KeyEmployees, r.employeesTTL, r.loadEmployees)
}

func (r *AgendaRepository) loadEmployees(ctx context.Context) (map[string]booking.Employee, error) {
	recs, err := r.store.ReadTable(ctx, tablestore.TableEmployees)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tablestore.TableEmployees, err)
	}

	out := make(map[string]booking.Employee, len(recs))
	for _, rec := range recs {
		numero := normalizeNumero(rec["numero"])
		if numero == "" {
			continue
		}
		out[numero] = booking.Employee{
			Numero: numero,
			Nombre: strings.TrimSpace(rec["nombre"]),
			Equipo: strings.TrimSpace(rec["equipo"]),
		}
	}
	return out, nil
}

func (r *AgendaRepository) FindEmployee(ctx context.Context, numero string) (*booking.Employee, error) {
	emps, err := r.Employees(ctx)
	if err != nil {
		return nil, err
	}
	emp, ok := emps[normalizeNumero(numero)]
	if !ok {
		return nil, nil
	}
	return &emp, nil
}

func (r *AgendaRepository) Teams(ctx context.Context) ([]string, error) {
	emps, err := r.Employees(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	teams := make([]string, 0)
	for _, e := range emps {
		if e.Equipo == "" {
			continue
		}
		if _, ok := seen[e.Equipo]; ok {
			continue
		}
		seen[e.Equipo] = struct{}{}
		teams = append(teams, e.Equipo)
	}
	sort.Strings(teams)
	return teams, nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *AgendaRepository) Agenda(ctx context.Context) ([]booking.Booking, error) {
	return cache.Load(ctx, r.cache, cache.KeyAgenda, r.agendaTTL, r.loadAgenda)
}

func (r *AgendaRepository) loadAgenda(ctx context.Context) ([]booking.Booking, error) {
	recs, err := r.store.ReadTable(ctx, tablestore.TableAgenda)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tablestore.TableAgenda, err)
	}

	out := make([]booking.Booking, 0, len(recs))
	for i, rec := range recs {
		fecha, ok := parseFecha(rec["fecha"])
		if !ok {
			r.log.Warn().
				Int("row", i+2).
				Str("fecha", rec["fecha"]).
				Msg("agenda row dropped: unparseable fecha")
			continue
		}
		out = append(out, booking.Booking{
			Numero: normalizeNumero(rec["numero"]),
			Nombre: strings.TrimSpace(rec["nombre"]),
			Equipo: strings.TrimSpace(rec["equipo"]),
			Fecha:  fecha,
			Tipo:   booking.Tipo(strings.TrimSpace(rec["tipo"])),
		})
	}
	return out, nil
}

func (r *AgendaRepository) AppendBooking(ctx context.Context, b booking.Booking) error {
	defer r.invalidate(ctx)

	if err := r.store.AppendRow(ctx, tablestore.TableAgenda, rowOf(b)); err != nil {
		return fmt.Errorf("append booking: %w", err)
	}
	return nil
}

// ReplaceAgenda regrava a tabela inteira: limpa, cabeçalho e linhas.
func (r *AgendaRepository) ReplaceAgenda(ctx context.Context, agenda []booking.Booking) error {
	defer r.invalidate(ctx)

	rows := make([][]string, 0, len(agenda))
	for _, b := range agenda {
		rows = append(rows, rowOf(b))
	}
	if err := r.store.ClearAndWrite(ctx, tablestore.TableAgenda, tablestore.AgendaHeader, rows); err != nil {
		return fmt.Errorf("replace agenda: %w", err)
	}
	return nil
}

// DeleteRows apaga só as linhas indicadas quando o store permite.
// Devolve false quando o store não apaga linhas pontuais ou quando alguma
// linha gravada num formato diferente (data dd/mm, numero "123.0") não casou.
func (r *AgendaRepository) DeleteRows(ctx context.Context, removed []booking.Booking) (bool, error) {
	d, ok := tablestore.AsRowDeleter(r.store)
	if !ok {
		return false, nil
	}
	defer r.invalidate(ctx)

	rows := make([][]string, 0, len(removed))
	for _, b := range removed {
		rows = append(rows, rowOf(b))
	}
	n, err := d.DeleteRows(ctx, tablestore.TableAgenda, rows)
	if err != nil {
		return true, fmt.Errorf("delete agenda rows: %w", err)
	}
	if n < len(rows) {
		r.log.Warn().
			Int("requested", len(rows)).
			Int("deleted", n).
			Msg("targeted delete missed rows, rewriting agenda")
		return false, nil
	}
	return true, nil
}

// RemoveBookings prefere o delete pontual e cai para a regravação completa.
// kept vem da leitura anterior ao delete, então a regravação também cobre
// um delete pontual parcial.
func (r *AgendaRepository) RemoveBookings(ctx context.Context, kept, removed []booking.Booking) error {
	if len(removed) == 0 {
		return nil
	}
	done, err := r.DeleteRows(ctx, removed)
	if done || err != nil {
		return err
	}
	return r.ReplaceAgenda(ctx, kept)
}

func (r *AgendaRepository) invalidate(ctx context.Context) {
	if err := r.cache.Invalidate(ctx, cache.KeyAgenda); err != nil {
		r.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func rowOf(b booking.Booking) []string {
	return []string{b.Numero, b.Nombre, b.Equipo, b.Fecha.Format(booking.DateLayout), string(b.Tipo)}
}

// normalizeNumero trata números lidos como float ("123.0").
func normalizeNumero(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ".0") {
		if _, err := strconv.Atoi(strings.TrimSuffix(s, ".0")); err == nil {
			return strings.TrimSuffix(s, ".0")
		}
	}
	return s
}

func parseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return booking.DateOf(t), true
		}
	}
	// serial de data do Excel
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		if t, err := excelize.ExcelDateToTime(f, false); err == nil {
			return booking.DateOf(t), true
		}
	}
	return time.Time{}, false
}

var _ booking.Repository = (*AgendaRepository)(nil)
