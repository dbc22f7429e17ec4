package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"giftcard-register-be/internal/repository/contract"
	"giftcard-register-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // the active transaction, nil when outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) GiftCardRepository() contract.IGiftCardRepository {
	return implementation.NewGiftCardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActivityLogRepository() contract.IActivityLogRepository {
	return implementation.NewActivityLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserRepository() contract.IUserRepository {
	return implementation.NewUserRepository(u.getDB())
}
