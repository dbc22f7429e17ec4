package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/pkg/serverutils"
	"giftcard-register-be/internal/service"
)

type IGiftCardController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ChangeStatus(ctx *fiber.Ctx) error
	Extend(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type giftCardController struct {
	service service.IGiftCardService
}

func NewGiftCardController(service service.IGiftCardService) IGiftCardController {
	return &giftCardController{service: service}
}

func (c *giftCardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/giftcards")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/search", c.Search)
	h.Get("/:id", c.Show)
	h.Patch("/:id/status", c.ChangeStatus)
	h.Patch("/:id/extend", c.Extend)
	h.Delete("/:id", c.Delete)
}

func (c *giftCardController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateGiftCardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.ActorFromCtx(ctx), req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create gift card", res))
}

func (c *giftCardController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gift card id")
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show gift card", res))
}

func (c *giftCardController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list gift cards", res))
}

func (c *giftCardController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchGiftCardRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.service.Search(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search gift cards", res))
}

func (c *giftCardController) ChangeStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gift card id")
	}

	var req dto.ChangeStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ChangeStatus(ctx.Context(), serverutils.ActorFromCtx(ctx), id, req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success change gift card status", res))
}

func (c *giftCardController) Extend(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gift card id")
	}

	var req dto.ExtendExpirationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ExtendExpiration(ctx.Context(), serverutils.ActorFromCtx(ctx), id, req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extend gift card expiration", res))
}

func (c *giftCardController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid gift card id")
	}

	if err := c.service.Delete(ctx.Context(), serverutils.ActorFromCtx(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete gift card", nil))
}
