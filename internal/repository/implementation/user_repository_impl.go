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

type userRepository struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.IUserRepository {
	return &userRepository{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *userRepository) applySpecifications(specs ...specification.Specification) *gorm.DB {
	query := r.db.Model(&model.User{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	return query
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	err := r.applySpecifications(specs...).WithContext(ctx).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *userRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	if err := r.applySpecifications(specs...).WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.User, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
