package delivery

import (
	"context"
	"errors"

	"foster/domain"

	"github.com/gofiber/fiber/v2"
)

type callHandler struct {
	cuc domain.CallUseCase
	buc domain.BiographyUseCase
}

type makeCallRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	FosterID    *int   `json:"fosterId"`
}

type transcriptRequest struct {
	CallID string `json:"call_id"`
}

func NewCallDelivery(app *fiber.App, callUC domain.CallUseCase, bioUC domain.BiographyUseCase) {
	handler := &callHandler{
		cuc: callUC,
		buc: bioUC,
	}

	app.Post("/api/make-call", handler.deliveryMakeCall)
	app.Post("/api/get-transcript", handler.deliveryGetTranscript)
}

func (ch *callHandler) deliveryMakeCall(c *fiber.Ctx) error {
	var req makeCallRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.PhoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number is required",
		})
	}

	callID, err := ch.cuc.MakeCallUC(context.Background(), req.PhoneNumber, req.FosterID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to initiate phone call",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Phone call initiated successfully",
		"call_id": callID,
	})
}

func (ch *callHandler) deliveryGetTranscript(c *fiber.Ctx) error {
	var req transcriptRequest
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

	transcript, err := ch.buc.GetTranscriptUC(context.Background(), req.CallID)
	if err != nil {
		if errors.Is(err, domain.ErrNoTranscript) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No transcript available for this call ID",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve transcript",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"transcript": transcript,
	})
}
