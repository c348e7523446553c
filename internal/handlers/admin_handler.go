package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/dto"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/export"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httpresp"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/middleware"
	ucbooking "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type AdminHandler struct {
	deleteBookings *ucbooking.DeleteBookings
	exportAgenda   *ucbooking.ExportAgenda
	calendar       *ucbooking.GetCalendar
	log            zerolog.Logger
}

func NewAdminHandler(
	deleteBookings *ucbooking.DeleteBookings,
	exportAgenda *ucbooking.ExportAgenda,
	calendar *ucbooking.GetCalendar,
	log zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		deleteBookings: deleteBookings,
		exportAgenda:   exportAgenda,
		calendar:       calendar,
		log:            log,
	}
}

// DeleteBookings apaga as linhas selecionadas de um dia.
func (h *AdminHandler) DeleteBookings(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	var req dto.DeleteBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	n, err := h.deleteBookings.Execute(c.Request.Context(), ucbooking.DeleteBookingsInput{
		Fecha: req.Fecha,
		Keys:  req.Rows,
		Actor: p.Subject,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.DeleteBookingsResponse{Fecha: req.Fecha, Removed: n})
}

func (h *AdminHandler) ExportCSV(c *gin.Context) {
	recs, err := h.exportAgenda.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, recs); err != nil {
		h.log.Error().Err(err).Msg("csv export failed")
		httperr.Internal(c, "export_failed", "No fue posible generar el archivo.")
		return
	}
	httpresp.Attachment(c, export.CSVFileName, contentTypeCSV, buf.Bytes())
}

func (h *AdminHandler) ExportXLSX(c *gin.Context) {
	recs, err := h.exportAgenda.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, recs); err != nil {
		h.log.Error().Err(err).Msg("xlsx export failed")
		httperr.Internal(c, "export_failed", "No fue posible generar el archivo.")
		return
	}
	httpresp.Attachment(c, export.XLSXFileName, contentTypeXLSX, buf.Bytes())
}

func (h *AdminHandler) CalendarPDF(c *gin.Context) {
	year, month, err := yearMonthParams(c)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	m, err := h.calendar.Execute(c.Request.Context(), ucbooking.GetCalendarInput{
		Year:     year,
		Month:    month,
		Team:     c.Query("team"),
		OnlyFull: boolParam(c, "only_full"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	body, err := export.CalendarPDF(*m)
	if err != nil {
		h.log.Error().Err(err).Msg("pdf export failed")
		httperr.Internal(c, "export_failed", "No fue posible generar el archivo.")
		return
	}
	httpresp.Attachment(c, fmt.Sprintf("calendario_%d_%02d.pdf", year, month), contentTypePDF, body)
}
