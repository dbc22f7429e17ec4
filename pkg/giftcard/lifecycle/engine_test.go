package lifecycle

import (
	"errors"
	"testing"
	"time"

	"giftcard-register-be/internal/entity"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func cardWith(status entity.GiftCardStatus) entity.GiftCard {
	return entity.GiftCard{
		Number:       "12345678",
		Amount:       5000,
		Status:       status,
		DurationDays: 90,
	}
}

// validFields satisfies the redeem/cancel policy so the table below
// exercises only the role gate.
var validFields = Fields{Notes: "done", Artist: "Jane"}

func TestTransitionTable(t *testing.T) {
	statuses := []entity.GiftCardStatus{
		entity.GiftCardStatusCreatedNotDelivered,
		entity.GiftCardStatusDelivered,
		entity.GiftCardStatusRedeemed,
		entity.GiftCardStatusCancelled,
	}

	adminAllowed := map[[2]entity.GiftCardStatus]bool{
		{entity.GiftCardStatusCreatedNotDelivered, entity.GiftCardStatusDelivered}: true,
		{entity.GiftCardStatusDelivered, entity.GiftCardStatusRedeemed}:            true,
	}

	engine := New(fixedClock)

	for _, role := range []entity.UserRole{entity.UserRoleAdmin, entity.UserRoleSuperadmin} {
		for _, current := range statuses {
			for _, requested := range statuses {
				name := string(role) + "/" + string(current) + "->" + string(requested)
				t.Run(name, func(t *testing.T) {
					_, err := engine.ComputeTransition(cardWith(current), requested, role, validFields)

					if current == requested {
						var noop *entity.NoOpError
						if !errors.As(err, &noop) {
							t.Fatalf("error = %v, want NoOpError", err)
						}
						return
					}

					want := role == entity.UserRoleSuperadmin || adminAllowed[[2]entity.GiftCardStatus{current, requested}]
					if want && err != nil {
						t.Fatalf("unexpected rejection: %v", err)
					}
					if !want {
						var perm *entity.PermissionError
						if !errors.As(err, &perm) {
							t.Fatalf("error = %v, want PermissionError", err)
						}
					}
				})
			}
		}
	}
}

func TestDeliveryDerivesTimestamps(t *testing.T) {
	engine := New(fixedClock)
	card := cardWith(entity.GiftCardStatusCreatedNotDelivered)

	got, err := engine.ComputeTransition(card, entity.GiftCardStatusDelivered, entity.UserRoleAdmin, Fields{})
	if err != nil {
		t.Fatalf("ComputeTransition() error = %v", err)
	}
	if got.DeliveredAt == nil || !got.DeliveredAt.Equal(now) {
		t.Errorf("DeliveredAt = %v, want %v", got.DeliveredAt, now)
	}
	wantExpiry := now.AddDate(0, 0, 90)
	if got.ExpiresAt == nil || !got.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, wantExpiry)
	}
}

func TestDeliveryDefaultsDuration(t *testing.T) {
	engine := New(fixedClock)
	card := cardWith(entity.GiftCardStatusCreatedNotDelivered)
	card.DurationDays = 0

	got, err := engine.ComputeTransition(card, entity.GiftCardStatusDelivered, entity.UserRoleAdmin, Fields{})
	if err != nil {
		t.Fatalf("ComputeTransition() error = %v", err)
	}
	want := now.AddDate(0, 0, entity.DefaultDurationDays)
	if got.ExpiresAt == nil || !got.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want default %v", got.ExpiresAt, want)
	}
}

func TestRedeemFieldPolicy(t *testing.T) {
	engine := New(fixedClock)
	card := cardWith(entity.GiftCardStatusDelivered)

	tests := []struct {
		name      string
		fields    Fields
		wantField string
	}{
		{"missing artist", Fields{Notes: "done"}, "artist"},
		{"missing notes", Fields{Artist: "Jane"}, "notes"},
		{"missing both", Fields{}, "artist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ComputeTransition(card, entity.GiftCardStatusRedeemed, entity.UserRoleAdmin, tt.fields)
			var validation *entity.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if validation.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", validation.Field, tt.wantField)
			}
		})
	}

	got, err := engine.ComputeTransition(card, entity.GiftCardStatusRedeemed, entity.UserRoleAdmin, Fields{Artist: "Jane", Notes: "sleeve session"})
	if err != nil {
		t.Fatalf("ComputeTransition() error = %v", err)
	}
	if got.RedeemedAt == nil || !got.RedeemedAt.Equal(now) {
		t.Errorf("RedeemedAt = %v, want %v", got.RedeemedAt, now)
	}
	if got.Artist != "Jane" || got.Notes != "sleeve session" {
		t.Errorf("artist/notes not persisted: %q / %q", got.Artist, got.Notes)
	}
}

func TestCancelRequiresNotes(t *testing.T) {
	engine := New(fixedClock)
	card := cardWith(entity.GiftCardStatusDelivered)

	_, err := engine.ComputeTransition(card, entity.GiftCardStatusCancelled, entity.UserRoleSuperadmin, Fields{})
	var validation *entity.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if validation.Field != "notes" {
		t.Errorf("ValidationError.Field = %q, want notes", validation.Field)
	}

	got, err := engine.ComputeTransition(card, entity.GiftCardStatusCancelled, entity.UserRoleSuperadmin, Fields{Notes: "customer refund"})
	if err != nil {
		t.Fatalf("ComputeTransition() error = %v", err)
	}
	if got.CancelledAt == nil || !got.CancelledAt.Equal(now) {
		t.Errorf("CancelledAt = %v, want %v", got.CancelledAt, now)
	}
}

func TestAdminCannotCancel(t *testing.T) {
	engine := New(fixedClock)
	for _, current := range []entity.GiftCardStatus{entity.GiftCardStatusCreatedNotDelivered, entity.GiftCardStatusDelivered} {
		_, err := engine.ComputeTransition(cardWith(current), entity.GiftCardStatusCancelled, entity.UserRoleAdmin, Fields{Notes: "nope"})
		var perm *entity.PermissionError
		if !errors.As(err, &perm) {
			t.Errorf("from %s: error = %v, want PermissionError", current, err)
		}
	}
}

func TestFirstWriteWinsOnEscapeHatch(t *testing.T) {
	later := now.Add(48 * time.Hour)
	clock := now
	engine := New(func() time.Time { return clock })

	// Deliver, redeem, then superadmin re-runs the redeem path via the
	// escape hatch two days later.
	card := cardWith(entity.GiftCardStatusCreatedNotDelivered)
	card, err := engine.ComputeTransition(card, entity.GiftCardStatusDelivered, entity.UserRoleAdmin, Fields{})
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	card, err = engine.ComputeTransition(card, entity.GiftCardStatusRedeemed, entity.UserRoleAdmin, Fields{Artist: "Jane", Notes: "done"})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	firstRedeemedAt := *card.RedeemedAt

	clock = later
	card, err = engine.ComputeTransition(card, entity.GiftCardStatusDelivered, entity.UserRoleSuperadmin, Fields{})
	if err != nil {
		t.Fatalf("escape hatch back to delivered: %v", err)
	}
	if !card.DeliveredAt.Equal(now) {
		t.Errorf("DeliveredAt overwritten: %v, want %v", card.DeliveredAt, now)
	}
	if !card.ExpiresAt.Equal(now.AddDate(0, 0, 90)) {
		t.Errorf("ExpiresAt re-derived: %v", card.ExpiresAt)
	}

	card, err = engine.ComputeTransition(card, entity.GiftCardStatusRedeemed, entity.UserRoleSuperadmin, Fields{Artist: "Maya", Notes: "corrected"})
	if err != nil {
		t.Fatalf("re-redeem: %v", err)
	}
	if !card.RedeemedAt.Equal(firstRedeemedAt) {
		t.Errorf("RedeemedAt overwritten: %v, want %v", card.RedeemedAt, firstRedeemedAt)
	}
	// Free-text fields do follow the correction.
	if card.Artist != "Maya" || card.Notes != "corrected" {
		t.Errorf("artist/notes not updated on re-entry: %q / %q", card.Artist, card.Notes)
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	engine := New(fixedClock)
	_, err := engine.ComputeTransition(cardWith(entity.GiftCardStatusDelivered), "expired", entity.UserRoleSuperadmin, validFields)
	var validation *entity.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestRejectionLeavesSnapshotUntouched(t *testing.T) {
	engine := New(fixedClock)
	card := cardWith(entity.GiftCardStatusDelivered)

	got, err := engine.ComputeTransition(card, entity.GiftCardStatusRedeemed, entity.UserRoleAdmin, Fields{})
	if err == nil {
		t.Fatal("expected rejection")
	}
	if got.Status != card.Status || got.RedeemedAt != nil {
		t.Errorf("rejected transition mutated the snapshot: %+v", got)
	}
}
