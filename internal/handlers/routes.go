package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hetpatel09/portfolio-api/internal/services"
)

// RegisterRoutes wires the full HTTP surface. Content reads and the
// contact relay are public; content mutations go through adminAuth.
func RegisterRoutes(app *fiber.App, adminAuth fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Portfolio API is running!"})
	})

	app.Post("/api/admin/login", AdminLogin)

	projects := app.Group("/api/projects")
	projects.Get("/", ListProjects)
	projects.Post("/", adminAuth, CreateProject)
	projects.Put("/:id", adminAuth, UpdateProject)
	projects.Delete("/:id", adminAuth, DeleteProject)

	experiences := app.Group("/api/experiences")
	experiences.Get("/", ListExperiences)
	experiences.Post("/", adminAuth, CreateExperience)
	experiences.Put("/:id", adminAuth, UpdateExperience)
	experiences.Delete("/:id", adminAuth, DeleteExperience)

	certifications := app.Group("/api/certifications")
	certifications.Get("/", ListCertifications)
	certifications.Post("/", adminAuth, CreateCertification)
	certifications.Put("/:id", adminAuth, UpdateCertification)
	certifications.Delete("/:id", adminAuth, DeleteCertification)

	app.Post("/api/contact", SendContactMessage)

	// Trailing catch-all: anything unmatched is a 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})
}

// ErrorHandler maps any error that escapes a handler to a generic 500.
// Internals are logged, never returned to the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong!"})
}

// validationBody shapes a validation failure the way the API reports
// them: a human message, plus the field rule when one applies.
func validationBody(ve *services.ValidationError) fiber.Map {
	body := fiber.Map{"message": ve.Message}
	if ve.Detail != "" {
		body["error"] = ve.Detail
	}
	return body
}
