package specification

import (
	"time"

	"gorm.io/gorm"

	"giftcard-register-be/internal/entity"
)

type ByNumber struct {
	Number string
}

func (s ByNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("number = ?", s.Number)
}

type NumberContains struct {
	Fragment string
}

func (s NumberContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("number ILIKE ?", "%"+s.Fragment+"%")
}

// ContactEmailContains matches the fragment against either the buyer
// or the recipient email.
type ContactEmailContains struct {
	Fragment string
}

func (s ContactEmailContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Fragment + "%"
	return db.Where("buyer_email ILIKE ? OR recipient_email ILIKE ?", pattern, pattern)
}

type ContactPhoneContains struct {
	Fragment string
}

func (s ContactPhoneContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Fragment + "%"
	return db.Where("buyer_phone LIKE ? OR recipient_phone LIKE ?", pattern, pattern)
}

type ByStatus struct {
	Status entity.GiftCardStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// CreatedBetween is an inclusive range on created_at. Either bound may
// be nil.
type CreatedBetween struct {
	From *time.Time
	To   *time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.From != nil {
		db = db.Where("created_at >= ?", *s.From)
	}
	if s.To != nil {
		db = db.Where("created_at <= ?", *s.To)
	}
	return db
}

// AmountBetween is an inclusive range on amount. Either bound may be nil.
type AmountBetween struct {
	Min *int64
	Max *int64
}

func (s AmountBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min != nil {
		db = db.Where("amount >= ?", *s.Min)
	}
	if s.Max != nil {
		db = db.Where("amount <= ?", *s.Max)
	}
	return db
}

// ForGiftCardFilter translates the search filter into the equivalent
// specification list. Semantics mirror pkg/giftcard/search.Matches.
func ForGiftCardFilter(f entity.GiftCardFilter) []Specification {
	var specs []Specification
	if f.Number != "" {
		specs = append(specs, NumberContains{Fragment: f.Number})
	}
	if f.Email != "" {
		specs = append(specs, ContactEmailContains{Fragment: f.Email})
	}
	if f.Phone != "" {
		specs = append(specs, ContactPhoneContains{Fragment: f.Phone})
	}
	if f.Status != "" {
		specs = append(specs, ByStatus{Status: f.Status})
	}
	if f.DateFrom != nil || f.DateTo != nil {
		specs = append(specs, CreatedBetween{From: f.DateFrom, To: f.DateTo})
	}
	if f.MinAmount != nil || f.MaxAmount != nil {
		specs = append(specs, AmountBetween{Min: f.MinAmount, Max: f.MaxAmount})
	}
	return specs
}
