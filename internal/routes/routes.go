package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aupetservices/petcare-scheduler/internal/audit"
	"github.com/aupetservices/petcare-scheduler/internal/cache"
	"github.com/aupetservices/petcare-scheduler/internal/config"
	"github.com/aupetservices/petcare-scheduler/internal/handlers"
	infraRepo "github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/middleware"
	ucAppointment "github.com/aupetservices/petcare-scheduler/internal/usecase/appointment"
	ucChat "github.com/aupetservices/petcare-scheduler/internal/usecase/chat"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	counters *cache.CounterCache,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	chatRepo := infraRepo.NewChatGormRepository(db)
	reviewLookup := infraRepo.NewReviewGormLookup(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES: CHAT
	// ======================================================
	createRoomUC := ucChat.NewCreateRoom(chatRepo)
	getOrCreateRoomUC := ucChat.NewGetOrCreateRoom(chatRepo)
	startChatUC := ucChat.NewGetOrCreateRoomForTutorAndProvider(
		chatRepo,
		getOrCreateRoomUC,
	)
	sendMessageUC := ucChat.NewSendMessage(chatRepo)
	listMessagesUC := ucChat.NewListMessages(chatRepo)
	listRoomsUC := ucChat.NewListRoomsByUser(chatRepo)

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	guard := ucAppointment.NewGuard(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		guard,
		getOrCreateRoomUC,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	listByTutorUC := ucAppointment.NewListAppointmentsByTutor(
		appointmentRepo,
		reviewLookup,
		listAppointmentsUC,
	)

	findAppointmentUC := ucAppointment.NewFindAppointment(appointmentRepo)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		guard,
		findAppointmentUC,
		auditDispatcher,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		findAppointmentUC,
		auditDispatcher,
	)

	removeAppointmentUC := ucAppointment.NewRemoveAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	countTodayUC := ucAppointment.NewCountAppointmentsForToday(
		appointmentRepo,
		counters,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		listByTutorUC,
		findAppointmentUC,
		updateAppointmentUC,
		updateStatusUC,
		removeAppointmentUC,
		countTodayUC,
	)

	chatHandler := handlers.NewChatHandler(
		chatRepo,
		createRoomUC,
		getOrCreateRoomUC,
		startChatUC,
		sendMessageUC,
		listMessagesUC,
		listRoomsUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.GET("/providers/:id/services", serviceHandler.ListByProvider)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/today/:providerId", appointmentHandler.CountToday)
			secured.GET("/appointments/tutor/:tutorId", appointmentHandler.ListByTutor)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CHAT
			// ------------------------------
			secured.POST("/chat/rooms", chatHandler.CreateRoom)
			secured.POST("/chat/rooms/start", chatHandler.StartChat)
			secured.GET("/chat/rooms", chatHandler.ListRooms)
			secured.GET("/chat/rooms/:id", chatHandler.GetRoom)
			secured.GET("/chat/rooms/:id/messages", chatHandler.ListMessages)
			secured.POST("/chat/messages", chatHandler.SendMessage)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
