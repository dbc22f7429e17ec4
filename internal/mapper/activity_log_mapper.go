package mapper

import (
	"encoding/json"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/model"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	var details map[string]interface{}
	if len(l.Details) > 0 {
		// Corrupt details should not make history unreadable.
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.ActivityLog{
		Id:         l.Id,
		UserId:     l.UserId,
		Username:   l.Username,
		Action:     l.Action,
		TargetType: entity.ActivityTargetType(l.TargetType),
		TargetId:   l.TargetId,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(l *entity.ActivityLog) *model.ActivityLog {
	if l == nil {
		return nil
	}
	var details []byte
	if l.Details != nil {
		details, _ = json.Marshal(l.Details)
	}
	return &model.ActivityLog{
		Id:         l.Id,
		UserId:     l.UserId,
		Username:   l.Username,
		Action:     l.Action,
		TargetType: string(l.TargetType),
		TargetId:   l.TargetId,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
