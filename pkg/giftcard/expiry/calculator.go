package expiry

import (
	"math"
	"time"

	"giftcard-register-be/internal/entity"
)

// DefaultWarningDays is the "about to expire" window shown on the
// admin dashboard.
const DefaultWarningDays = 15

// DaysUntil returns the whole-day difference between expiresAt and now
// (floored, so a card half a day past its expiration reports -1). The
// second return is false when no expiration date is set.
func DaysUntil(expiresAt *time.Time, now time.Time) (int, bool) {
	if expiresAt == nil {
		return 0, false
	}
	return int(math.Floor(expiresAt.Sub(now).Hours() / 24)), true
}

// AboutToExpire reports whether the card expires within threshold days
// from now. Already-expired cards are excluded: the window is exactly
// [0, threshold].
func AboutToExpire(expiresAt *time.Time, now time.Time, threshold int) bool {
	days, ok := DaysUntil(expiresAt, now)
	if !ok {
		return false
	}
	return days >= 0 && days <= threshold
}

// Extend advances an existing expiration date by additionalDays. The
// extension is additive to the stored value, not to now: a card that
// expired ten days ago extended by five days is still expired.
func Extend(expiresAt *time.Time, additionalDays int) (time.Time, error) {
	if expiresAt == nil {
		return time.Time{}, &entity.PreconditionError{Reason: "card has no expiration date to extend"}
	}
	if additionalDays <= 0 {
		return time.Time{}, &entity.ValidationError{Field: "days", Reason: "must be a positive number of days"}
	}
	return expiresAt.AddDate(0, 0, additionalDays), nil
}
