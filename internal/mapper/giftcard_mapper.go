package mapper

import (
	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/model"
)

type GiftCardMapper struct{}

func NewGiftCardMapper() *GiftCardMapper {
	return &GiftCardMapper{}
}

func (m *GiftCardMapper) ToEntity(g *model.GiftCard) *entity.GiftCard {
	if g == nil {
		return nil
	}
	return &entity.GiftCard{
		Id:     g.Id,
		Number: g.Number,
		Buyer: entity.Contact{
			Name:  g.BuyerName,
			Email: g.BuyerEmail,
			Phone: g.BuyerPhone,
		},
		Recipient: entity.Contact{
			Name:  g.RecipientName,
			Email: g.RecipientEmail,
			Phone: g.RecipientPhone,
		},
		Amount:          g.Amount,
		Status:          entity.GiftCardStatus(g.Status),
		DurationDays:    g.DurationDays,
		Notes:           g.Notes,
		Artist:          g.Artist,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		DeliveredAt:     g.DeliveredAt,
		ExpiresAt:       g.ExpiresAt,
		RedeemedAt:      g.RedeemedAt,
		CancelledAt:     g.CancelledAt,
		TermsAcceptedAt: g.TermsAcceptedAt,
	}
}

func (m *GiftCardMapper) ToModel(g *entity.GiftCard) *model.GiftCard {
	if g == nil {
		return nil
	}
	return &model.GiftCard{
		Id:              g.Id,
		Number:          g.Number,
		BuyerName:       g.Buyer.Name,
		BuyerEmail:      g.Buyer.Email,
		BuyerPhone:      g.Buyer.Phone,
		RecipientName:   g.Recipient.Name,
		RecipientEmail:  g.Recipient.Email,
		RecipientPhone:  g.Recipient.Phone,
		Amount:          g.Amount,
		Status:          string(g.Status),
		DurationDays:    g.DurationDays,
		Notes:           g.Notes,
		Artist:          g.Artist,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		DeliveredAt:     g.DeliveredAt,
		ExpiresAt:       g.ExpiresAt,
		RedeemedAt:      g.RedeemedAt,
		CancelledAt:     g.CancelledAt,
		TermsAcceptedAt: g.TermsAcceptedAt,
	}
}

func (m *GiftCardMapper) ToEntities(cards []*model.GiftCard) []*entity.GiftCard {
	entities := make([]*entity.GiftCard, len(cards))
	for i, g := range cards {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
