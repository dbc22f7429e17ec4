package controller

import (
	"github.com/gofiber/fiber/v2"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/pkg/serverutils"
	"giftcard-register-be/internal/service"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Query)
}

func (c *activityController) Query(ctx *fiber.Ctx) error {
	var req dto.ActivityQueryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.Query(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success query activity", res))
}
