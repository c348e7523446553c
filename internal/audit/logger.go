package audit

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/models"
)

// LogSink escreve cada evento no log estruturado.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "audit").Logger()}
}

func (s *LogSink) Write(_ context.Context, ev Event) error {
	s.log.Info().
		Str("actor", ev.Actor).
		Str("role", ev.Role).
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Interface("metadata", ev.Metadata).
		Time("at", ev.At).
		Msg("audit")
	return nil
}

// GormSink persiste o evento em audit_logs quando o store é o Postgres.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		Actor:     ev.Actor,
		Role:      ev.Role,
		Action:    ev.Action,
		Entity:    ev.Entity,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	}

	return s.db.WithContext(ctx).Create(&log).Error
}
