package dto

import "github.com/google/uuid"

// GiftCardDeliveredMessage is the payload queued when a card enters
// the delivered status. The consumer re-reads the card before mailing.
type GiftCardDeliveredMessage struct {
	GiftCardId uuid.UUID `json:"gift_card_id"`
}
