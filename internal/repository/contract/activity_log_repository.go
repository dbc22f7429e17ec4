package contract

import (
	"context"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/repository/specification"
)

// IActivityLogRepository defines the persistence operations for the
// activity trail. Entries are append-only.
type IActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) (*entity.ActivityLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
