package entity

import (
	"time"

	"github.com/google/uuid"
)

type GiftCardStatus string

const (
	GiftCardStatusCreatedNotDelivered GiftCardStatus = "created_not_delivered"
	GiftCardStatusDelivered           GiftCardStatus = "delivered"
	GiftCardStatusRedeemed            GiftCardStatus = "redeemed"
	GiftCardStatusCancelled           GiftCardStatus = "cancelled"
)

// DefaultDurationDays is the validity window applied when a card is
// created without an explicit duration. The clock starts at delivery,
// not at creation.
const DefaultDurationDays = 90

// MinAmount is the smallest sellable card value (whole pesos).
const MinAmount = 1000

// IsValidStatus reports whether s is one of the four lifecycle statuses.
func IsValidStatus(s GiftCardStatus) bool {
	switch s {
	case GiftCardStatusCreatedNotDelivered, GiftCardStatusDelivered,
		GiftCardStatusRedeemed, GiftCardStatusCancelled:
		return true
	}
	return false
}

// Contact is the buyer/recipient triple stored on every card.
type Contact struct {
	Name  string
	Email string
	Phone string
}

type GiftCard struct {
	Id           uuid.UUID
	Number       string
	Buyer        Contact
	Recipient    Contact
	Amount       int64
	Status       GiftCardStatus
	DurationDays int
	Notes        string
	Artist       string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Lifecycle timestamps. Each is written exactly once, the first
	// time the card enters the corresponding status. ExpiresAt is the
	// exception: an explicit extension may advance it further.
	DeliveredAt     *time.Time
	ExpiresAt       *time.Time
	RedeemedAt      *time.Time
	CancelledAt     *time.Time
	TermsAcceptedAt *time.Time
}

// GiftCardPublicView is the projection served to unauthenticated
// lookups. Buyer/recipient contact details, notes and artist are
// deliberately absent.
type GiftCardPublicView struct {
	Number          string
	Amount          int64
	Status          GiftCardStatus
	DeliveredAt     *time.Time
	ExpiresAt       *time.Time
	TermsAcceptedAt *time.Time
}

// PublicView strips the card down to the unauthenticated projection.
func (g *GiftCard) PublicView() *GiftCardPublicView {
	return &GiftCardPublicView{
		Number:          g.Number,
		Amount:          g.Amount,
		Status:          g.Status,
		DeliveredAt:     g.DeliveredAt,
		ExpiresAt:       g.ExpiresAt,
		TermsAcceptedAt: g.TermsAcceptedAt,
	}
}

// GiftCardFilter is the multi-predicate search filter. Zero-valued
// fields impose no constraint; present predicates are ANDed together.
type GiftCardFilter struct {
	Number    string // substring, case-insensitive
	Email     string // substring against buyer OR recipient email
	Phone     string // substring against buyer OR recipient phone
	Status    GiftCardStatus
	DateFrom  *time.Time // inclusive, on CreatedAt
	DateTo    *time.Time // inclusive, on CreatedAt
	MinAmount *int64     // inclusive
	MaxAmount *int64     // inclusive
}
