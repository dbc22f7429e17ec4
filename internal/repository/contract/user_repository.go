package contract

import (
	"context"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/repository/specification"
)

// IUserRepository defines the persistence operations for staff accounts.
type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
}
