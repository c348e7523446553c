package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/dto"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httpresp"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/middleware"
	ucbooking "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

type MeHandler struct {
	repo         booking.Repository
	availability *ucbooking.CheckAvailability
	create       *ucbooking.CreateBooking
}

func NewMeHandler(
	repo booking.Repository,
	availability *ucbooking.CheckAvailability,
	create *ucbooking.CreateBooking,
) *MeHandler {
	return &MeHandler{repo: repo, availability: availability, create: create}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	emp, err := h.repo.FindEmployee(c.Request.Context(), p.Subject)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if emp == nil {
		httperr.FromError(c, httperr.ErrBusiness("employee_not_found"))
		return
	}

	httpresp.OK(c, emp)
}

// Availability diz se o empregado do token pode marcar ?date= e quem já está no dia.
func (h *MeHandler) Availability(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	fecha, err := dateParam(c, "date")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), p.Subject, fecha)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *MeHandler) CreateBooking(c *gin.Context) {
	p, _ := middleware.PrincipalFrom(c)

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		Numero: p.Subject,
		Fecha:  req.Fecha,
		Tipo:   req.Tipo,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Día registrado exitosamente",
		"booking": dto.DayRowsFrom([]booking.Booking{*b})[0],
	})
}
