package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityTargetType string

const (
	TargetTypeGiftCard ActivityTargetType = "giftcard"
	TargetTypeUser     ActivityTargetType = "user"
	TargetTypeSystem   ActivityTargetType = "system"
	TargetTypeTerms    ActivityTargetType = "terms"
)

// Activity action codes recorded by mutating operations.
const (
	ActionGiftCardCreated       = "GIFTCARD_CREATED"
	ActionGiftCardStatusChanged = "GIFTCARD_STATUS_CHANGED"
	ActionGiftCardExtended      = "GIFTCARD_EXPIRATION_EXTENDED"
	ActionGiftCardDeleted       = "GIFTCARD_DELETED"
	ActionTermsAccepted         = "TERMS_ACCEPTED"
	ActionUserLogin             = "USER_LOGIN"
)

// ActivityLog is an immutable append-only record of who did what to
// which entity. It references its target by id only; deleting a gift
// card does not delete its history.
type ActivityLog struct {
	Id         uuid.UUID
	UserId     *uuid.UUID
	Username   string
	Action     string
	TargetType ActivityTargetType
	TargetId   *string
	Details    map[string]interface{}
	CreatedAt  time.Time
}

// ActivityFilter narrows audit queries. Both fields optional.
type ActivityFilter struct {
	Date   *time.Time // matches the calendar day of CreatedAt
	UserId *uuid.UUID
}
