package dto

import (
	"time"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type CreateGiftCardRequest struct {
	Buyer     ContactRequest `json:"buyer" validate:"required"`
	Recipient ContactRequest `json:"recipient" validate:"required"`
	Amount    int64          `json:"amount" validate:"required,gte=1000"`
	// Number is optional. When present it must be exactly 8 digits and
	// not already in use; when absent one is generated.
	Number       string `json:"number" validate:"omitempty,len=8,numeric"`
	DurationDays int    `json:"duration_days" validate:"omitempty,gt=0"`
	Notes        string `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
	Artist string `json:"artist"`
}

type ExtendExpirationRequest struct {
	Days int `json:"days" validate:"required,gt=0"`
}

// SearchGiftCardRequest is bound from query parameters. All fields are
// optional; present ones are combined with AND.
type SearchGiftCardRequest struct {
	Number    string `query:"number"`
	Email     string `query:"email"`
	Phone     string `query:"phone"`
	Status    string `query:"status"`
	DateFrom  string `query:"date_from"` // YYYY-MM-DD
	DateTo    string `query:"date_to"`   // YYYY-MM-DD
	MinAmount *int64 `query:"min_amount"`
	MaxAmount *int64 `query:"max_amount"`
}

type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type GiftCardResponse struct {
	Id           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	Buyer        ContactResponse `json:"buyer"`
	Recipient    ContactResponse `json:"recipient"`
	Amount       int64           `json:"amount"`
	Status       string          `json:"status"`
	DurationDays int             `json:"duration_days"`
	Notes        string          `json:"notes,omitempty"`
	Artist       string          `json:"artist,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	RedeemedAt      *time.Time `json:"redeemed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at,omitempty"`

	// Derived expiry annotations, only meaningful once delivered.
	DaysUntilExpiration *int `json:"days_until_expiration,omitempty"`
	AboutToExpire       bool `json:"about_to_expire"`
}

type GiftCardListResponse struct {
	Items []GiftCardResponse `json:"items"`
	Total int64              `json:"total"`
}

// GiftCardPublicResponse carries no buyer or recipient contact details.
type GiftCardPublicResponse struct {
	Number          string     `json:"number"`
	Amount          int64      `json:"amount"`
	Status          string     `json:"status"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at,omitempty"`
}
