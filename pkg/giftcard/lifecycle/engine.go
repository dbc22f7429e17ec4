package lifecycle

import (
	"time"

	"giftcard-register-be/internal/entity"
)

// Fields carries the free-text inputs a status change may require.
type Fields struct {
	Notes  string
	Artist string
}

// Engine validates and executes status transitions. It is pure: it
// mutates a copy of the card snapshot and leaves persistence to the
// caller, so a rejected transition can never leave partial state.
type Engine struct {
	now func() time.Time
}

// New builds an engine over the given clock. A nil clock falls back to
// time.Now.
func New(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// adminForward is the only path a standard admin may walk, one step at
// a time: created_not_delivered -> delivered -> redeemed.
var adminForward = map[entity.GiftCardStatus]entity.GiftCardStatus{
	entity.GiftCardStatusCreatedNotDelivered: entity.GiftCardStatusDelivered,
	entity.GiftCardStatusDelivered:           entity.GiftCardStatusRedeemed,
}

// Allowed reports whether role may move a card from current to
// requested. Superadmins may set any status from any status (the
// escape hatch for correcting mistakes); admins only advance along the
// forward path. A same-status request is never allowed for either role.
func Allowed(current, requested entity.GiftCardStatus, role entity.UserRole) bool {
	if current == requested {
		return false
	}
	if role == entity.UserRoleSuperadmin {
		return true
	}
	return adminForward[current] == requested
}

// ComputeTransition validates the requested change and returns the
// mutated snapshot. Derived timestamps are written exactly once per
// status (first-write-wins), so re-entering a visited status through
// the superadmin escape hatch preserves the original history. Notes
// and artist, by contrast, are updated on every redeem/cancel entry:
// an operator re-running a transition is correcting the record.
func (e *Engine) ComputeTransition(card entity.GiftCard, requested entity.GiftCardStatus, role entity.UserRole, f Fields) (entity.GiftCard, error) {
	if !entity.IsValidStatus(requested) {
		return card, &entity.ValidationError{Field: "status", Reason: "unknown status " + string(requested)}
	}
	if card.Status == requested {
		return card, &entity.NoOpError{Status: card.Status}
	}
	if !Allowed(card.Status, requested, role) {
		return card, &entity.PermissionError{Role: role, From: card.Status, To: requested}
	}

	switch requested {
	case entity.GiftCardStatusRedeemed:
		if f.Artist == "" {
			return card, &entity.ValidationError{Field: "artist", Reason: "required when redeeming"}
		}
		if f.Notes == "" {
			return card, &entity.ValidationError{Field: "notes", Reason: "required when redeeming"}
		}
	case entity.GiftCardStatusCancelled:
		if f.Notes == "" {
			return card, &entity.ValidationError{Field: "notes", Reason: "required when cancelling"}
		}
	}

	now := e.now()
	switch requested {
	case entity.GiftCardStatusDelivered:
		if card.DeliveredAt == nil {
			delivered := now
			card.DeliveredAt = &delivered

			duration := card.DurationDays
			if duration <= 0 {
				duration = entity.DefaultDurationDays
			}
			expires := now.AddDate(0, 0, duration)
			card.ExpiresAt = &expires
		}
	case entity.GiftCardStatusRedeemed:
		if card.RedeemedAt == nil {
			redeemed := now
			card.RedeemedAt = &redeemed
		}
		card.Artist = f.Artist
		card.Notes = f.Notes
	case entity.GiftCardStatusCancelled:
		if card.CancelledAt == nil {
			cancelled := now
			card.CancelledAt = &cancelled
		}
		card.Notes = f.Notes
	}

	card.Status = requested
	card.UpdatedAt = now
	return card, nil
}
