package delivery

import (
	"context"
	"errors"
	"strings"

	"foster/domain"

	"github.com/gofiber/fiber/v2"
)

type biographyHandler struct {
	buc domain.BiographyUseCase
}

type generateBiographyRequest struct {
	CallID string `json:"call_id"`
}

type saveBioRequest struct {
	FosterID  int    `json:"fosterId"`
	Biography string `json:"biography"`
}

func NewBiographyDelivery(app *fiber.App, uc domain.BiographyUseCase) {
	handler := &biographyHandler{
		buc: uc,
	}

	app.Post("/api/generate-biography", handler.deliveryGenerateBiography)
	app.Post("/api/generate-pet-bio", handler.deliveryGeneratePetBio)
	app.Post("/api/save-pet-bio", handler.deliverySaveBiography)
}

func (bh *biographyHandler) deliveryGenerateBiography(c *fiber.Ctx) error {
	var req generateBiographyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.CallID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Call ID is required",
		})
	}

	result, err := bh.buc.GenerateBiographyUC(context.Background(), req.CallID)
	if err != nil {
		if errors.Is(err, domain.ErrNoTranscript) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No transcript available for this call ID",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate biography",
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (bh *biographyHandler) deliveryGeneratePetBio(c *fiber.Ctx) error {
	var req domain.PetBioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.FosterID == 0 || req.PetName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Foster ID and pet name are required",
		})
	}

	if strings.TrimSpace(req.Transcription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Transcription is required to generate a biography",
		})
	}

	bio, err := bh.buc.GeneratePetBioUC(context.Background(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrFosterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Foster not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to generate biography",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"biography": bio,
		"success":   true,
		"preview":   req.PreviewOnly,
	})
}

func (bh *biographyHandler) deliverySaveBiography(c *fiber.Ctx) error {
	var req saveBioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.FosterID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Foster ID is required",
		})
	}

	if strings.TrimSpace(req.Biography) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Biography text is required",
		})
	}

	if err := bh.buc.SaveBiographyUC(context.Background(), req.FosterID, req.Biography); err != nil {
		if errors.Is(err, domain.ErrFosterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Foster not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Biography saved successfully",
	})
}
