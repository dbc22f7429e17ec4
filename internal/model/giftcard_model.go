package model

import (
	"time"

	"github.com/google/uuid"
)

type GiftCard struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number string    `gorm:"type:varchar(8);uniqueIndex;not null"`

	BuyerName      string `gorm:"type:varchar(255);not null"`
	BuyerEmail     string `gorm:"type:varchar(255);not null"`
	BuyerPhone     string `gorm:"type:varchar(50);not null"`
	RecipientName  string `gorm:"type:varchar(255);not null"`
	RecipientEmail string `gorm:"type:varchar(255);not null"`
	RecipientPhone string `gorm:"type:varchar(50);not null"`

	Amount       int64  `gorm:"not null"`
	Status       string `gorm:"type:varchar(30);not null;index"`
	DurationDays int    `gorm:"not null;default:90"`
	Notes        string `gorm:"type:text"`
	Artist       string `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	DeliveredAt     *time.Time `gorm:"index"`
	ExpiresAt       *time.Time `gorm:"index"`
	RedeemedAt      *time.Time
	CancelledAt     *time.Time
	TermsAcceptedAt *time.Time
}

func (GiftCard) TableName() string {
	return "gift_cards"
}
