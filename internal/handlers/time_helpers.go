package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/timezone"
)

// dateParam lê ?<name>=YYYY-MM-DD; ausente vale hoje no fuso configurado.
func dateParam(c *gin.Context, name string) (time.Time, error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return timezone.Today(), nil
	}
	d, err := booking.ParseDate(s)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

// yearMonthParams lê ?year&month; ausentes valem o mês corrente.
func yearMonthParams(c *gin.Context) (int, int, error) {
	today := timezone.Today()
	year, month := today.Year(), int(today.Month())

	if s := c.Query("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, httperr.ErrBusiness("invalid_date")
		}
		year = n
	}
	if s := c.Query("month"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, httperr.ErrBusiness("invalid_date")
		}
		month = n
	}
	return year, month, nil
}

func boolParam(c *gin.Context, name string) bool {
	b, _ := strconv.ParseBool(c.Query(name))
	return b
}
