package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"giftcard-register-be/internal/entity"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("username", claims["username"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}

// ActorFromCtx resolves the acting staff member from the locals set by
// JwtMiddleware. Falls back to the system actor when unauthenticated.
func ActorFromCtx(ctx *fiber.Ctx) entity.Actor {
	actor := entity.SystemActor

	if id, ok := ctx.Locals("user_id").(string); ok {
		if parsed, err := uuid.Parse(id); err == nil {
			actor.UserId = parsed
		}
	}
	if username, ok := ctx.Locals("username").(string); ok && username != "" {
		actor.Username = username
	}
	if role, ok := ctx.Locals("role").(string); ok && entity.UserRole(role) != "" {
		actor.Role = entity.UserRole(role)
	}

	return actor
}
