package delivery

import (
	"context"
	"errors"
	"fmt"

	"foster/domain"

	"github.com/gofiber/fiber/v2"
)

type programHandler struct {
	puc domain.ProgramUseCase
}

func NewProgramDelivery(app *fiber.App, uc domain.ProgramUseCase) {
	handler := &programHandler{
		puc: uc,
	}

	app.Post("/api/run-foster-program", handler.deliveryRunProgram)
}

func (ph *programHandler) deliveryRunProgram(c *fiber.Ctx) error {
	result, err := ph.puc.RunProgramUC(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrProgramRunning) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}

		resp := fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("An error occurred: %v", err),
		}
		if result != nil {
			resp["logs"] = result.Logs
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Program completed successfully. Processed %d fosters.", result.Processed),
		"logs":    result.Logs,
	})
}
