package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/mapper"
	"giftcard-register-be/internal/model"
	"giftcard-register-be/internal/repository/contract"
	"giftcard-register-be/internal/repository/specification"
)

type giftCardRepository struct {
	db     *gorm.DB
	mapper *mapper.GiftCardMapper
}

func NewGiftCardRepository(db *gorm.DB) contract.IGiftCardRepository {
	return &giftCardRepository{
		db:     db,
		mapper: mapper.NewGiftCardMapper(),
	}
}

func (r *giftCardRepository) applySpecifications(specs ...specification.Specification) *gorm.DB {
	query := r.db.Model(&model.GiftCard{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	return query
}

func (r *giftCardRepository) Create(ctx context.Context, card *entity.GiftCard) (*entity.GiftCard, error) {
	m := r.mapper.ToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *giftCardRepository) Update(ctx context.Context, card *entity.GiftCard) (*entity.GiftCard, error) {
	m := r.mapper.ToModel(card)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *giftCardRepository) Delete(ctx context.Context, specs ...specification.Specification) error {
	return r.applySpecifications(specs...).WithContext(ctx).Delete(&model.GiftCard{}).Error
}

func (r *giftCardRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GiftCard, error) {
	var m model.GiftCard
	err := r.applySpecifications(specs...).WithContext(ctx).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *giftCardRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GiftCard, error) {
	var models []*model.GiftCard
	if err := r.applySpecifications(specs...).WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *giftCardRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	if err := r.applySpecifications(specs...).WithContext(ctx).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *giftCardRepository) ExistsNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GiftCard{}).
		Where("number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *giftCardRepository) Numbers(ctx context.Context) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&model.GiftCard{}).
		Pluck("number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}
