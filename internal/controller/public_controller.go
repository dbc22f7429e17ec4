package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"giftcard-register-be/internal/pkg/serverutils"
	"giftcard-register-be/internal/service"
)

// IPublicController serves the unauthenticated card lookup used by
// recipients. Responses carry no contact details.
type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	AcceptTerms(ctx *fiber.Ctx) error
}

type publicController struct {
	service service.IGiftCardService
	rdb     *redis.Client
}

func NewPublicController(service service.IGiftCardService, rdb *redis.Client) IPublicController {
	return &publicController{service: service, rdb: rdb}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public/giftcards")
	h.Use(serverutils.RateLimitMiddleware(c.rdb, 30, time.Minute))
	h.Get("/:number", c.Show)
	h.Post("/:number/accept-terms", c.AcceptTerms)
}

func (c *publicController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublicView(ctx.Context(), ctx.Params("number"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show gift card", res))
}

func (c *publicController) AcceptTerms(ctx *fiber.Ctx) error {
	res, err := c.service.AcceptTerms(ctx.Context(), ctx.Params("number"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept terms", res))
}
