package delivery

import (
	"context"

	"foster/domain"

	"github.com/gofiber/fiber/v2"
)

type photographyHandler struct {
	puc domain.PhotographyUseCase
}

type photoRequestBody struct {
	RecipientEmail string `json:"recipientEmail"`
	FosterName     string `json:"fosterName"`
	PetName        string `json:"petName"`
}

type checkPhotoRequestBody struct {
	Foster struct {
		CallID *string `json:"call_id"`
	} `json:"foster"`
}

func NewPhotographyDelivery(app *fiber.App, uc domain.PhotographyUseCase) {
	handler := &photographyHandler{
		puc: uc,
	}

	app.Post("/api/send-photo-request", handler.deliverySendPhotoRequest)
	app.Post("/api/check-photo-request", handler.deliveryCheckPhotoRequest)
	app.Get("/api/test-email", handler.deliveryTestEmail)
}

func (ph *photographyHandler) deliverySendPhotoRequest(c *fiber.Ctx) error {
	var req photoRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.RecipientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Recipient email is required",
		})
	}

	if err := ph.puc.SendPhotoRequestUC(context.Background(), req.RecipientEmail, req.FosterName, req.PetName); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send email.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Photo request email sent!",
	})
}

func (ph *photographyHandler) deliveryCheckPhotoRequest(c *fiber.Ctx) error {
	var req checkPhotoRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Foster.CallID == nil || *req.Foster.CallID == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "No email needed – photographyNeeded is false or missing",
		})
	}

	sent, err := ph.puc.CheckPhotoRequestUC(context.Background(), *req.Foster.CallID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error while processing transcription",
		})
	}

	if !sent {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "No email needed – photographyNeeded is false or missing",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Photography team notified & flag reset",
	})
}

func (ph *photographyHandler) deliveryTestEmail(c *fiber.Ctx) error {
	if err := ph.puc.SendTestEmailUC(context.Background()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send test email.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Test email sent successfully!",
	})
}
