package routes

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/audit"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/auth"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/cache"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/config"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-vacaciones/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/metrics"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/middleware"
	"github.com/BruksfildServices01/agenda-vacaciones/internal/tablestore"
	ucBooking "github.com/BruksfildServices01/agenda-vacaciones/internal/usecase/booking"
)

// Deps são os singletons montados no main.
type Deps struct {
	Config  *config.Config
	Store   tablestore.Store
	Cache   cache.Cache
	Log     zerolog.Logger
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
	Ring    *audit.Ring
	Creds   *auth.Credentials
	Tokens  *auth.TokenIssuer
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(d.Config.CORSOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaRepository(
		d.Store,
		d.Cache,
		d.Config.EmployeesTTL,
		d.Config.AgendaTTL,
		d.Log,
	)

	// criação e remoção regravam a mesma tabela
	agendaLock := &sync.Mutex{}

	// ======================================================
	// USE CASES (AGENDA)
	// ======================================================
	checkAvailabilityUC := ucBooking.NewCheckAvailability(agendaRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		agendaRepo,
		d.Audit,
		d.Metrics,
		agendaLock,
		d.Log,
	)

	deleteBookingsUC := ucBooking.NewDeleteBookings(
		agendaRepo,
		d.Audit,
		d.Metrics,
		agendaLock,
		d.Log,
	)

	getCalendarUC := ucBooking.NewGetCalendar(agendaRepo)
	getDayDetailUC := ucBooking.NewGetDayDetail(agendaRepo)
	exportAgendaUC := ucBooking.NewExportAgenda(agendaRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(agendaRepo, d.Creds, d.Tokens, d.Audit, d.Log)
	meHandler := handlers.NewMeHandler(agendaRepo, checkAvailabilityUC, createBookingUC)
	calendarHandler := handlers.NewCalendarHandler(agendaRepo, getCalendarUC, getDayDetailUC)
	adminHandler := handlers.NewAdminHandler(deleteBookingsUC, exportAgendaUC, getCalendarUC, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.Ring)

	// ======================================================
	// INFRA HTTP
	// ======================================================
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/admin", authHandler.AdminLogin)

		api.GET("/employees/teams", calendarHandler.Teams)
		api.GET("/calendar", calendarHandler.Month)
		api.GET("/calendar/day", calendarHandler.Day)

		// ------------------------------
		// EMPREGADO
		// ------------------------------
		me := api.Group("/me")
		me.Use(
			middleware.AuthMiddleware(d.Tokens),
			middleware.RequireRole(auth.RoleEmployee),
		)
		{
			me.GET("", meHandler.GetMe)
			me.GET("/availability", meHandler.Availability)
			me.POST("/bookings", meHandler.CreateBooking)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(d.Tokens),
			middleware.RequireRole(auth.RoleAdmin),
		)
		{
			admin.DELETE("/bookings", adminHandler.DeleteBookings)
			admin.GET("/export.csv", adminHandler.ExportCSV)
			admin.GET("/export.xlsx", adminHandler.ExportXLSX)
			admin.GET("/calendar.pdf", adminHandler.CalendarPDF)
			admin.GET("/audit", auditLogsHandler.List)
		}
	}
}
