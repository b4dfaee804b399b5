package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hetpatel09/portfolio-api/internal/services"
)

var experienceService *services.ExperienceService

// InitExperienceHandlers wires the experience service into the handlers.
func InitExperienceHandlers(s *services.ExperienceService) {
	experienceService = s
}

func ListExperiences(c *fiber.Ctx) error {
	experiences, err := experienceService.List(c.Context())
	if err != nil {
		log.Printf("Error fetching experiences: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching experiences"})
	}
	return c.JSON(experiences)
}

func CreateExperience(c *fiber.Ctx) error {
	var in services.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	experience, err := experienceService.Create(c.Context(), in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(validationBody(ve))
		}
		log.Printf("Error creating experience: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating experience"})
	}
	return c.Status(fiber.StatusCreated).JSON(experience)
}

func UpdateExperience(c *fiber.Ctx) error {
	var in services.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	experience, err := experienceService.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid experience ID format"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Experience not found"})
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(validationBody(ve))
		}
		log.Printf("Error updating experience: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating experience"})
	}
	return c.JSON(experience)
}

func DeleteExperience(c *fiber.Ctx) error {
	experience, err := experienceService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid experience ID format"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Experience not found"})
		}
		log.Printf("Error deleting experience: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting experience"})
	}
	return c.JSON(fiber.Map{
		"message":           "Experience deleted successfully",
		"deletedExperience": experience,
	})
}
