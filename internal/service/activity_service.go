package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/repository/specification"
	"giftcard-register-be/internal/repository/unitofwork"
)

type IActivityService interface {
	Query(ctx context.Context, req dto.ActivityQueryRequest) (*dto.ActivityListResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
	}
}

func (s *activityService) Query(ctx context.Context, req dto.ActivityQueryRequest) (*dto.ActivityListResponse, error) {
	specs, err := buildActivitySpecs(req)
	if err != nil {
		return nil, err
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ActivityLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, &entity.IOError{Op: "query activity", Err: err}
	}

	items := make([]dto.ActivityLogResponse, len(logs))
	for i, l := range logs {
		items[i] = dto.ActivityLogResponse{
			Id:         l.Id,
			UserId:     l.UserId,
			Username:   l.Username,
			Action:     l.Action,
			TargetType: string(l.TargetType),
			TargetId:   l.TargetId,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt,
		}
	}
	return &dto.ActivityListResponse{Items: items, Total: int64(len(items))}, nil
}

func buildActivitySpecs(req dto.ActivityQueryRequest) ([]specification.Specification, error) {
	var specs []specification.Specification

	if req.TargetType != "" {
		if req.TargetId == "" {
			return nil, &entity.ValidationError{Field: "target_id", Reason: "required when target_type is set"}
		}
		specs = append(specs, specification.ByTarget{
			TargetType: entity.ActivityTargetType(req.TargetType),
			TargetId:   req.TargetId,
		})
	}

	if req.Date != "" {
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, &entity.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
		}
		specs = append(specs, specification.OnDay{Date: day})
	}

	if req.UserId != "" {
		id, err := uuid.Parse(req.UserId)
		if err != nil {
			return nil, &entity.ValidationError{Field: "user_id", Reason: "invalid uuid"}
		}
		specs = append(specs, specification.ByUser{UserId: id})
	}

	return specs, nil
}
