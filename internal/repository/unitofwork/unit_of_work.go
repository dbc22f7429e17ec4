package unitofwork

import (
	"context"

	"giftcard-register-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GiftCardRepository() contract.IGiftCardRepository
	ActivityLogRepository() contract.IActivityLogRepository
	UserRepository() contract.IUserRepository
}
