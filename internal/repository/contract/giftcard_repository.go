package contract

import (
	"context"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/repository/specification"
)

// IGiftCardRepository defines the persistence operations for gift cards.
type IGiftCardRepository interface {
	Create(ctx context.Context, card *entity.GiftCard) (*entity.GiftCard, error)
	Update(ctx context.Context, card *entity.GiftCard) (*entity.GiftCard, error)
	Delete(ctx context.Context, specs ...specification.Specification) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GiftCard, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GiftCard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// ExistsNumber reports whether any card currently holds the number.
	ExistsNumber(ctx context.Context, number string) (bool, error)
	// Numbers returns every number currently in use.
	Numbers(ctx context.Context) ([]string, error)
}
