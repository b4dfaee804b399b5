package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hetpatel09/portfolio-api/internal/services"
)

var certificationService *services.CertificationService

// InitCertificationHandlers wires the certification service into the
// handlers.
func InitCertificationHandlers(s *services.CertificationService) {
	certificationService = s
}

func ListCertifications(c *fiber.Ctx) error {
	certifications, err := certificationService.List(c.Context())
	if err != nil {
		log.Printf("Error fetching certifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching certifications"})
	}
	return c.JSON(certifications)
}

func CreateCertification(c *fiber.Ctx) error {
	var in services.CertificationInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	certification, err := certificationService.Create(c.Context(), in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(validationBody(ve))
		}
		log.Printf("Error creating certification: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating certification"})
	}
	return c.Status(fiber.StatusCreated).JSON(certification)
}

func UpdateCertification(c *fiber.Ctx) error {
	var in services.CertificationInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	certification, err := certificationService.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid certification ID format"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Certification not found"})
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(validationBody(ve))
		}
		log.Printf("Error updating certification: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating certification"})
	}
	return c.JSON(certification)
}

func DeleteCertification(c *fiber.Ctx) error {
	certification, err := certificationService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid certification ID format"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Certification not found"})
		}
		log.Printf("Error deleting certification: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error deleting certification"})
	}
	return c.JSON(fiber.Map{
		"message":              "Certification deleted successfully",
		"deletedCertification": certification,
	})
}
