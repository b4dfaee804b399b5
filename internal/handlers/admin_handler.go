package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hetpatel09/portfolio-api/internal/services"
)

var adminService *services.AdminService

// InitAdminHandler wires the admin service into the login handler.
func InitAdminHandler(s *services.AdminService) {
	adminService = s
}

// AdminLogin exchanges the shared admin passphrase for a bearer token.
func AdminLogin(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password is required"})
	}

	token, err := adminService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error signing token"})
	}

	return c.JSON(fiber.Map{"token": token})
}
