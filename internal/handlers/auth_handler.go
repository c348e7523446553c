package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/audit"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/auth"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/domain/booking"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/dto"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httperr"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/httpresp"
)

type AuthHandler struct {
	repo   booking.Repository
	creds  *auth.Credentials
	tokens *auth.TokenIssuer
	audit  *audit.Dispatcher
	log    zerolog.Logger
}

func NewAuthHandler(
	repo booking.Repository,
	creds *auth.Credentials,
	tokens *auth.TokenIssuer,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{repo: repo, creds: creds, tokens: tokens, audit: audit, log: log}
}

// Login identifica o empregado pela senha de equipe + número.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !h.creds.CheckUser(req.Password) {
		httperr.FromError(c, httperr.ErrBusiness("invalid_credentials"))
		return
	}

	emp, err := h.repo.FindEmployee(c.Request.Context(), strings.TrimSpace(req.Numero))
	if err != nil {
		h.log.Error().Err(err).Msg("employee lookup failed")
		httperr.FromError(c, err)
		return
	}
	if emp == nil {
		httperr.FromError(c, httperr.ErrBusiness("invalid_credentials"))
		return
	}

	token, exp, err := h.tokens.Issue(auth.Principal{
		Subject: emp.Numero,
		Role:    auth.RoleEmployee,
		Team:    emp.Equipo,
		Name:    emp.Nombre,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No fue posible iniciar sesión.")
		return
	}

	httpresp.OK(c, dto.TokenResponse{
		Token:     token,
		ExpiresAt: exp,
		Role:      string(auth.RoleEmployee),
		Employee:  emp,
	})
}

// AdminLogin troca o segredo compartilhado por um token de admin.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !h.creds.CheckAdmin(req.Password) {
		h.log.Warn().Str("ip", c.ClientIP()).Msg("admin login rejected")
		httperr.Unauthorized(c, "invalid_credentials", "Contraseña de administrador incorrecta.")
		return
	}

	token, exp, err := h.tokens.Issue(auth.Principal{Subject: "admin", Role: auth.RoleAdmin})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No fue posible iniciar sesión.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Role:     string(auth.RoleAdmin),
		Action:   "admin_login",
		Entity:   "session",
		Metadata: map[string]any{"ip": c.ClientIP()},
	})

	httpresp.OK(c, dto.TokenResponse{
		Token:     token,
		ExpiresAt: exp,
		Role:      string(auth.RoleAdmin),
	})
}
