package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// ======================================================
// Códigos de negócio -> HTTP
// ======================================================

type mapping struct {
	status  int
	message string
}

var businessCodes = map[string]mapping{
	"day_full": {
		http.StatusConflict,
		"Seleccione otro día, ya que el día que solicitas ya está llena la agenda.",
	},
	"team_conflict": {
		http.StatusConflict,
		"No puedes seleccionar este día porque ya hay alguien de tu equipo registrado.",
	},
	"invalid_tipo":       {http.StatusBadRequest, "Tipo inválido. Use Vacaciones, Permiso o Sanción."},
	"invalid_date":       {http.StatusBadRequest, "Fecha inválida."},
	"employee_not_found": {http.StatusNotFound, "Número de empleado no encontrado."},
	"invalid_credentials": {
		http.StatusUnauthorized,
		"Ingresa tu contraseña y un número de empleado válido.",
	},
	"nothing_to_export": {http.StatusNotFound, "No hay datos para exportar."},
}

// FromError responde com o status do código de negócio; erros de
// infraestrutura viram 500 store_unavailable.
func FromError(c *gin.Context, err error) {
	if code, ok := CodeOf(err); ok {
		if m, known := businessCodes[code]; known {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}
	Internal(c, "store_unavailable", "No fue posible acceder a la agenda.")
}
