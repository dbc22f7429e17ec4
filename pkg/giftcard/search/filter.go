package search

import (
	"strings"

	"giftcard-register-be/internal/entity"
)

// Matches reports whether a card satisfies every present predicate of
// the filter. Absent fields impose no constraint.
func Matches(card *entity.GiftCard, f entity.GiftCardFilter) bool {
	if f.Number != "" && !containsFold(card.Number, f.Number) {
		return false
	}
	if f.Email != "" &&
		!containsFold(card.Buyer.Email, f.Email) &&
		!containsFold(card.Recipient.Email, f.Email) {
		return false
	}
	if f.Phone != "" &&
		!strings.Contains(card.Buyer.Phone, f.Phone) &&
		!strings.Contains(card.Recipient.Phone, f.Phone) {
		return false
	}
	if f.Status != "" && card.Status != f.Status {
		return false
	}
	if f.DateFrom != nil && card.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && card.CreatedAt.After(*f.DateTo) {
		return false
	}
	if f.MinAmount != nil && card.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && card.Amount > *f.MaxAmount {
		return false
	}
	return true
}

// Apply filters a collection, preserving the input order.
func Apply(cards []*entity.GiftCard, f entity.GiftCardFilter) []*entity.GiftCard {
	out := make([]*entity.GiftCard, 0, len(cards))
	for _, c := range cards {
		if Matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
