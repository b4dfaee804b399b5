package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hetpatel09/portfolio-api/internal/services"
)

var projectService *services.ProjectService

// InitProjectHandlers wires the project service into the handlers.
func InitProjectHandlers(s *services.ProjectService) {
	projectService = s
}

func ListProjects(c *fiber.Ctx) error {
	projects, err := projectService.List(c.Context())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching projects"})
	}
	return c.JSON(projects)
}

func CreateProject(c *fiber.Ctx) error {
	var in services.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	project, err := projectService.Create(c.Context(), in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(validationBody(ve))
		}
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating project"})
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func UpdateProject(c *fiber.Ctx) error {
	var in services.ProjectInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	project, err := projectService.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid project ID format"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Project not found"})
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(validationBody(ve))
		}
		log.Printf("Error updating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating project"})
	}
	return c.JSON(project)
}

func DeleteProject(c *fiber.Ctx) error {
	project, err := projectService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid project ID format"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Project not found"})
		}
		log.Printf("Error deleting project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting project"})
	}
	return c.JSON(fiber.Map{
		"message":        "Project deleted successfully",
		"deletedProject": project,
	})
}
