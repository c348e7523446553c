package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/dto"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httpresp"
	ucbooking "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

type CalendarHandler struct {
	repo     booking.Repository
	calendar *ucbooking.GetCalendar
	day      *ucbooking.GetDayDetail
}

func NewCalendarHandler(
	repo booking.Repository,
	calendar *ucbooking.GetCalendar,
	day *ucbooking.GetDayDetail,
) *CalendarHandler {
	return &CalendarHandler{repo: repo, calendar: calendar, day: day}
}

// Teams lista as opções do filtro, começando por "Todos".
func (h *CalendarHandler) Teams(c *gin.Context) {
	teams, err := h.repo.Teams(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, append([]string{booking.TeamAll}, teams...))
}

func (h *CalendarHandler) Month(c *gin.Context) {
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

	httpresp.OK(c, m)
}

func (h *CalendarHandler) Day(c *gin.Context) {
	fecha, err := dateParam(c, "date")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	list, err := h.day.Execute(c.Request.Context(), fecha.Format(booking.DateLayout), c.Query("team"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.DayRowsFrom(list))
}
