package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"giftcard-register-be/internal/entity"
)

type ByTarget struct {
	TargetType entity.ActivityTargetType
	TargetId   string
}

func (s ByTarget) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_type = ? AND target_id = ?", string(s.TargetType), s.TargetId)
}

type ByUser struct {
	UserId uuid.UUID
}

func (s ByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// OnDay matches entries created within the calendar day of Date (UTC).
type OnDay struct {
	Date time.Time
}

func (s OnDay) Apply(db *gorm.DB) *gorm.DB {
	start := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
	return db.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
}
