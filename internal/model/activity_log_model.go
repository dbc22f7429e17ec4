package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     *uuid.UUID     `gorm:"type:uuid;index"`
	Username   string         `gorm:"type:varchar(255);not null"`
	Action     string         `gorm:"type:varchar(50);not null;index"`
	TargetType string         `gorm:"type:varchar(20);not null;index:idx_activity_target"`
	TargetId   *string        `gorm:"type:varchar(64);index:idx_activity_target"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"default:now();not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
