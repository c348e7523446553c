package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/audit"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditReader interface {
	Recent(limit int) []audit.Event
}

type AuditLogsHandler struct {
	reader AuditReader
}

func NewAuditLogsHandler(reader AuditReader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtro opcional por ação
	// --------------------------------------------------
	events := h.reader.Recent(0)
	out := make([]audit.Event, 0, limit)
	for _, ev := range events {
		if action != "" && ev.Action != action {
			continue
		}
		out = append(out, ev)
		if len(out) == limit {
			break
		}
	}

	httpresp.List(c, out)
}
