package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hetpatel09/portfolio-api/internal/mail"
)

var mailer mail.Sender

// InitContactHandler wires the mail sender into the contact handler.
func InitContactHandler(m mail.Sender) {
	mailer = m
}

// SendContactMessage relays a contact-form submission to the operator
// inbox. Missing fields fail before any send; a failed send is terminal
// for the request.
func SendContactMessage(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}

	err := mailer.Send(mail.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		log.Printf("Error sending email: %v", err)
		switch {
		case errors.Is(err, mail.ErrAuth):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Email authentication failed. Please check your email configuration.",
				"error":   "Authentication Error",
			})
		case errors.Is(err, mail.ErrUnreachable):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Email server not found. Please check your internet connection.",
				"error":   "Network Error",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error sending message. Please try again later.",
				"error":   "Email Error",
			})
		}
	}

	return c.JSON(fiber.Map{"message": "Message sent successfully"})
}
