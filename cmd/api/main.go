package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/campusconnect/campus-events-backend/internal/config"
	"github.com/campusconnect/campus-events-backend/internal/handler"
	"github.com/campusconnect/campus-events-backend/internal/middleware"
	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/repository"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/database"
	"github.com/campusconnect/campus-events-backend/pkg/email"
	"github.com/campusconnect/campus-events-backend/pkg/storage"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

func main() {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	cfg := config.LoadConfig()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.OtpCode{},
		&models.Event{},
		&models.Registration{},
		&models.Attendance{},
		&models.Announcement{},
		&models.Discussion{},
		&models.Comment{},
		&models.Report{},
		&models.Photos{},
		&models.PhotoLike{},
	); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOtpRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	annRepo := repository.NewAnnouncementRepository(db)
	discRepo := repository.NewDiscussionRepository(db)
	reportRepo := repository.NewReportRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Storage service
	store, err := storage.NewS3Storage(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Email service
	emailService := email.NewEmailService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, zapLogger)

	// Services
	authService := service.NewAuthService(otpRepo, userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo, store, zapLogger)
	regService := service.NewRegistrationService(regRepo, attRepo, eventRepo, userRepo, zapLogger)
	annService := service.NewAnnouncementService(annRepo, eventRepo, userRepo)
	discService := service.NewDiscussionService(discRepo, reportRepo, userRepo)
	photoService := service.NewPhotoService(photoRepo, eventRepo, userRepo, store, zapLogger)
	analyticsService := service.NewAnalyticsService(eventRepo, regRepo, attRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	regHandler := handler.NewRegistrationHandler(regService, validator)
	annHandler := handler.NewAnnouncementHandler(annService, validator)
	discHandler := handler.NewDiscussionHandler(discService, validator)
	photoHandler := handler.NewPhotoHandler(photoService, validator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/send-otp", authHandler.SendOTP)
	auth.Post("/verify-otp", authHandler.VerifyOTP)

	api.Post("/users/anonymous", userHandler.CreateAnonymous)

	api.Get("/events", eventHandler.GetAll)
	api.Get("/events/:id", eventHandler.GetByID)
	api.Get("/registrations/code/:code", regHandler.GetByCode)
	api.Get("/announcements/general", annHandler.GetGeneral)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		users := api.Group("/users", middleware.RequireOrganizer())
		users.Get("/by-email", userHandler.GetByEmail)
		users.Get("/:id", userHandler.GetByID)

		events := api.Group("/events")
		events.Post("/", middleware.RequireOrganizer(), eventHandler.Create)
		events.Get("/mine/list", middleware.RequireOrganizer(), eventHandler.GetMine)
		events.Put("/:id", middleware.RequireOrganizer(), eventHandler.Update)
		events.Delete("/:id", middleware.RequireOrganizer(), eventHandler.Delete)
		events.Post("/:id/reassign", middleware.RequireOrganizer(), eventHandler.Reassign)

		events.Delete("/:eventId/register", regHandler.Cancel)
		events.Get("/:eventId/registrations", middleware.RequireOrganizer(), regHandler.GetByEvent)
		events.Get("/:eventId/attendance", middleware.RequireOrganizer(), regHandler.GetEventAttendance)
		events.Get("/:eventId/announcements", annHandler.GetByEvent)
		events.Get("/:eventId/discussions", discHandler.GetByEvent)
		events.Get("/:eventId/photos", photoHandler.GetByEvent)

		regs := api.Group("/registrations")
		regs.Post("/", regHandler.Register)
		regs.Get("/mine", regHandler.GetMine)
		regs.Get("/history", regHandler.History)
		regs.Get("/stats", regHandler.Stats)
		regs.Get("/:id", regHandler.GetByID)
		regs.Get("/:id/qr", regHandler.TicketQR)

		api.Post("/attendance", middleware.RequireOrganizer(), regHandler.MarkAttendance)

		anns := api.Group("/announcements")
		anns.Post("/", middleware.RequireOrganizer(), annHandler.Create)
		anns.Get("/", annHandler.GetAll)
		anns.Get("/mine", middleware.RequireOrganizer(), annHandler.GetMine)
		anns.Delete("/:id", middleware.RequireOrganizer(), annHandler.Delete)

		discs := api.Group("/discussions")
		discs.Post("/", discHandler.Create)
		discs.Post("/:id/pin", middleware.RequireOrganizer(), discHandler.TogglePin)
		discs.Delete("/:id", discHandler.Delete)
		discs.Post("/:id/comments", discHandler.AddComment)
		discs.Get("/:id/comments", discHandler.GetComments)

		api.Delete("/comments/:id", discHandler.DeleteComment)

		reports := api.Group("/reports")
		reports.Post("/", discHandler.Report)
		reports.Get("/", middleware.RequireOrganizer(), discHandler.GetReports)
		reports.Patch("/:id", middleware.RequireOrganizer(), discHandler.ResolveReport)

		photos := api.Group("/photos")
		photos.Get("/upload-url", photoHandler.GenerateUploadURL)
		photos.Post("/", photoHandler.Save)
		photos.Post("/:id/like", photoHandler.ToggleLike)
		photos.Get("/:id/liked", photoHandler.HasLiked)
		photos.Delete("/:id", photoHandler.Delete)

		analytics := api.Group("/analytics", middleware.RequireOrganizer())
		analytics.Get("/summary", analyticsHandler.Summary)
		analytics.Get("/trends", analyticsHandler.Trends)
		analytics.Get("/categories", analyticsHandler.CategoryStats)
		analytics.Get("/attendance-rates", analyticsHandler.AttendanceRates)
		analytics.Get("/peak-times", analyticsHandler.PeakTimes)
	}

	zapLogger.Info("Starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
