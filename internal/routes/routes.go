package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/blob"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAdmin "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/admin"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucMessage "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/message"
	ucQueue "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/queue"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
	ucUser "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/user"
)

// Deps are the process-wide collaborators built by the caller.
type Deps struct {
	Blobs      blob.Store
	QueueCache queue.Cache
	Audit      audit.Recorder
	Logger     zerolog.Logger
	Migration  db.MigrationResult
	Version    string
}

func RegisterRoutes(r *gin.Engine, gdb *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(gdb)
	reportRepo := infraRepo.NewReportGormRepository(gdb)
	userRepo := infraRepo.NewUserGormRepository(gdb)
	queueRepo := infraRepo.NewQueueGormRepository(gdb)
	messageRepo := infraRepo.NewMessageGormRepository(gdb)

	// ======================================================
	// USE CASES
	// ======================================================
	listDoctorsUC := ucUser.NewListDoctors(userRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewBookAppointment(appointmentRepo, deps.Audit),
		ucAppointment.NewConfirmAppointment(appointmentRepo, deps.Audit),
		ucAppointment.NewCancelAppointment(appointmentRepo, deps.Audit),
		ucAppointment.NewDeleteAppointment(appointmentRepo, deps.Audit),
		ucAppointment.NewListPatientAppointments(appointmentRepo),
		ucAppointment.NewListAllAppointments(appointmentRepo),
		ucAppointment.NewPatientHistory(appointmentRepo),
	)

	reportHandler := handlers.NewReportHandler(
		ucReport.NewSaveReport(reportRepo, deps.Blobs, deps.Audit, deps.Logger),
		ucReport.NewGetReport(reportRepo),
		cfg.MaxUploadBytes(),
	)

	doctorHandler := handlers.NewDoctorHandler(
		listDoctorsUC,
		ucQueue.NewGetQueueStatus(queueRepo, deps.QueueCache, cfg.WaitMinutesPerPatient),
		ucQueue.NewUpdateDoctorStatus(queueRepo, deps.QueueCache, deps.Audit),
	)

	adminHandler := handlers.NewAdminHandler(handlers.AdminUseCases{
		ListDoctors:     listDoctorsUC,
		CreateDoctor:    ucUser.NewCreateDoctor(userRepo, deps.QueueCache, deps.Audit),
		DeleteDoctor:    ucUser.NewDeleteDoctor(userRepo, deps.QueueCache, deps.Audit),
		ListPatients:    ucUser.NewListPatients(userRepo),
		DeletePatient:   ucUser.NewDeletePatient(userRepo, deps.Audit),
		Stats:           ucAdmin.NewGetStats(userRepo, appointmentRepo, cfg.ClinicTimezone),
		AllAppointments: ucAppointment.NewListAdminAppointments(appointmentRepo),
	})

	authHandler := handlers.NewAuthHandler(ucUser.NewLogin(userRepo))
	contactHandler := handlers.NewContactHandler(
		ucMessage.NewCreateMessage(messageRepo),
		ucMessage.NewListMessages(messageRepo),
	)
	uploadHandler := handlers.NewUploadHandler(deps.Blobs)
	healthHandler := handlers.NewHealthHandler(deps.Migration, cfg.Driver(), deps.Version)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/uploads/:filename", uploadHandler.Get)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Get)

		api.POST("/login", authHandler.Login)
		api.GET("/doctors", doctorHandler.List)
		api.GET("/queue", doctorHandler.Queue)
		api.POST("/contact", contactHandler.Create)

		api.POST("/book", appointmentHandler.Book)
		api.GET("/appointments", appointmentHandler.ListForPatient)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.POST("/appointments/:id/cancel", appointmentHandler.Cancel)

		api.GET("/report/:aptId", reportHandler.Get)
	}

	doctor := api.Group("/doctor")
	{
		doctor.GET("/appointments", appointmentHandler.ListAll)
		doctor.GET("/patient_history/:mobile", appointmentHandler.PatientHistory)
		doctor.POST("/report", reportHandler.Save)
		doctor.POST("/status", doctorHandler.UpdateStatus)
		doctor.GET("/messages", contactHandler.List)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/doctors", adminHandler.ListDoctors)
		admin.POST("/doctors", adminHandler.CreateDoctor)
		admin.DELETE("/doctors", adminHandler.DeleteDoctor)

		admin.GET("/patients", adminHandler.ListPatients)
		admin.DELETE("/patients", adminHandler.DeletePatient)

		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/all_appointments", adminHandler.AllAppointments)
	}
}
