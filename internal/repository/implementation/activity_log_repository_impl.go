package implementation

import (
	"context"

	"gorm.io/gorm"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/mapper"
	"giftcard-register-be/internal/model"
	"giftcard-register-be/internal/repository/contract"
	"giftcard-register-be/internal/repository/specification"
)

type activityLogRepository struct {
	db     *gorm.DB
	mapper *mapper.ActivityLogMapper
}

func NewActivityLogRepository(db *gorm.DB) contract.IActivityLogRepository {
	return &activityLogRepository{
		db:     db,
		mapper: mapper.NewActivityLogMapper(),
	}
}

func (r *activityLogRepository) applySpecifications(specs ...specification.Specification) *gorm.DB {
	query := r.db.Model(&model.ActivityLog{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	return query
}

func (r *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) (*entity.ActivityLog, error) {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *activityLogRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	var models []*model.ActivityLog
	if err := r.applySpecifications(specs...).WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *activityLogRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	if err := r.applySpecifications(specs...).WithContext(ctx).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
