package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-app/internal/config"
	"github.com/BruksfildServices01/barbearia-app/internal/handlers"
	"github.com/BruksfildServices01/barbearia-app/internal/media"
	"github.com/BruksfildServices01/barbearia-app/internal/middleware"
	"github.com/BruksfildServices01/barbearia-app/internal/notify"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	ucBooking "github.com/BruksfildServices01/barbearia-app/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	cfg *config.Config,
	dispatcher *notify.Dispatcher,
	mediaProc *media.Processor,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(st, dispatcher)
	availabilityUC := ucBooking.NewGetAvailability(st)
	confirmUC := ucBooking.NewConfirmAppointment(st)
	cancelUC := ucBooking.NewCancelAppointment(st)
	completeUC := ucBooking.NewCompleteAppointment(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg)
	publicHandler := handlers.NewPublicHandler(st, createBookingUC, availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(st, confirmUC, cancelUC, completeUC)
	serviceHandler := handlers.NewServiceHandler(st)
	configHandler := handlers.NewConfigHandler(st)
	galleryHandler := handlers.NewGalleryHandler(st, mediaProc)
	reportHandler := handlers.NewReportHandler(st)

	// ======================================================
	// MÍDIA ESTÁTICA (fotos da galeria)
	// ======================================================
	r.Static("/media", mediaProc.Dir())

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/config", publicHandler.GetConfig)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)

			publicAPI.GET("/gallery", galleryHandler.List)
			publicAPI.POST("/gallery/:id/like", galleryHandler.Like)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (admin)
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/pending", appointmentHandler.ListPending)
			secured.GET("/appointments/search", appointmentHandler.Search)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/config", configHandler.Get)
			secured.PUT("/config", configHandler.Update)
			secured.PUT("/password", configHandler.UpdatePassword)

			secured.POST("/gallery", galleryHandler.Create)
			secured.DELETE("/gallery/:id", galleryHandler.Delete)

			secured.GET("/dashboard", reportHandler.Dashboard)
			secured.GET("/reports/month", reportHandler.Monthly)
		}
	}
}
