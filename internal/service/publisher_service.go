package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
)

type IEventPublisherService interface {
	PublishGiftCardDelivered(card *entity.GiftCard) error
}

type eventPublisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewEventPublisherService(topicName string, pubSub *gochannel.GoChannel) IEventPublisherService {
	return &eventPublisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *eventPublisherService) PublishGiftCardDelivered(card *entity.GiftCard) error {
	payload := dto.GiftCardDeliveredMessage{
		GiftCardId: card.Id,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadJson)
	return s.pubSub.Publish(s.topicName, msg)
}
