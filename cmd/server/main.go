package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hetpatel09/portfolio-api/internal/config"
	"github.com/hetpatel09/portfolio-api/internal/db"
	"github.com/hetpatel09/portfolio-api/internal/handlers"
	"github.com/hetpatel09/portfolio-api/internal/mail"
	"github.com/hetpatel09/portfolio-api/internal/middleware"
	"github.com/hetpatel09/portfolio-api/internal/services"
	"github.com/hetpatel09/portfolio-api/internal/store/mongostore"
)

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.FrontendOrigin}))

	// Connect to MongoDB; startup fails hard without storage.
	database := db.Connect(cfg.MongoURI, cfg.MongoDatabase)
	contentStore := mongostore.New(database)

	// The mail relay handle is checked once at startup, best-effort.
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.ContactInbox)
	if err := mailer.Verify(); err != nil {
		log.Printf("Email transporter verification failed: %v", err)
	}

	handlers.InitProjectHandlers(services.NewProjectService(contentStore))
	handlers.InitExperienceHandlers(services.NewExperienceService(contentStore))
	handlers.InitCertificationHandlers(services.NewCertificationService(contentStore))
	handlers.InitContactHandler(mailer)
	handlers.InitAdminHandler(services.NewAdminService(cfg.JWTSecret, cfg.AdminPassword, cfg.AdminPasswordHash))

	handlers.RegisterRoutes(app, middleware.AdminAuth([]byte(cfg.JWTSecret)))

	// Shut down cleanly on interrupt so the storage connection is
	// released.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	db.Disconnect(database)
}
