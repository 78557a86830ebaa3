package delivery

import (
	"context"
	"errors"
	"strconv"

	"foster/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type fosterHandler struct {
	fuc domain.FosterUseCase
}

func NewFosterDelivery(app *fiber.App, uc domain.FosterUseCase) {
	handler := &fosterHandler{
		fuc: uc,
	}

	app.Get("/api/profiles", handler.deliveryGetAllFosters)
	app.Get("/api/profiles/:id", handler.deliveryGetFosterByID)
	app.Post("/api/profiles", handler.deliveryCreateFoster)
	app.Delete("/api/fosters/:id", handler.deliveryDeleteFoster)
}

func (fh *fosterHandler) deliveryGetAllFosters(c *fiber.Ctx) error {
	fosters, err := fh.fuc.GetAllFostersUC(context.Background())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if *fosters == nil {
		return c.Status(fiber.StatusOK).JSON([]domain.Foster{})
	}

	return c.Status(fiber.StatusOK).JSON(fosters)
}

func (fh *fosterHandler) deliveryGetFosterByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid foster id",
		})
	}

	foster, err := fh.fuc.GetFosterByIDUC(context.Background(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFosterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Foster not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(foster)
}

func (fh *fosterHandler) deliveryCreateFoster(c *fiber.Ctx) error {
	var req domain.Foster
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := fh.fuc.CreateFosterUC(context.Background(), &req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

func (fh *fosterHandler) deliveryDeleteFoster(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid foster id",
		})
	}

	deleted, err := fh.fuc.DeleteFosterUC(context.Background(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFosterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Foster not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Foster deleted successfully",
		"deletedFoster": deleted,
	})
}
