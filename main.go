package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life-missions-system/handlers"
	"life-missions-system/logging"
	"life-missions-system/services"
	"life-missions-system/store"
	"life-missions-system/utils"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		slog.Error("DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	if err := utils.InitR2(); err != nil {
		slog.Error("failed to initialize R2 client", "error", err)
		os.Exit(1)
	}

	// TranslateError maps unique-index violations to gorm.ErrDuplicatedKey,
	// which the mission engine relies on to detect completion races.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	if err := utils.EnsureUploadDir(); err != nil {
		slog.Error("failed to ensure upload dir", "error", err)
		os.Exit(1)
	}

	if err := services.SeedReferenceData(st); err != nil {
		slog.Error("failed to seed reference data", "error", err)
		os.Exit(1)
	}

	missionService := services.NewMissionService(st)
	lifeService := services.NewLifeService(st)

	sched, err := missionService.StartLevelAuditScheduler(1 * time.Hour)
	if err != nil {
		slog.Error("failed to start level audit scheduler", "error", err)
		os.Exit(1)
	}

	if dsnSentry := os.Getenv("SENTRY_DSN"); dsnSentry != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsnSentry,
			Environment: os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    20 * 1024 * 1024, // mission photos
		ErrorHandler: errorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("ALLOWED_ORIGINS"),
	}))

	handlers.SetupMissionRoutes(app, missionService)
	handlers.SetupLifeRoutes(app, lifeService)

	app.Static("/uploads", "./uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5200"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "port", port)
		if err := app.Listen(":" + port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if err := sched.Shutdown(); err != nil {
		slog.Error("scheduler shutdown error", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}
	slog.Info("server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
