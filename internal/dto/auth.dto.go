package dto

import (
	"time"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
)

type LoginRequest struct {
	Numero   string `json:"numero" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Role      string            `json:"role"`
	Employee  *booking.Employee `json:"employee,omitempty"`
}
