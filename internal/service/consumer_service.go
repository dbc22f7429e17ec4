package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/pkg/mailer"
	"giftcard-register-be/internal/repository/specification"
	"giftcard-register-be/internal/repository/unitofwork"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.GiftCardDeliveredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	card, err := uow.GiftCardRepository().FindOne(ctx, specification.ByID{ID: payload.GiftCardId})
	if err != nil {
		log.Printf("[ERROR] Failed to get gift card %s: %v", payload.GiftCardId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if card == nil {
		log.Printf("[WARN] Gift card not found: %s", payload.GiftCardId)
		msg.Ack() // Card deleted since delivery? Ack.
		return
	}

	err = cs.emailService.SendDeliveryNotice(
		card.Recipient.Email,
		card.Recipient.Name,
		card.Number,
		card.Amount,
		card.ExpiresAt,
	)
	if err != nil {
		log.Printf("[ERROR] Failed to send delivery notice for card %s: %v", card.Number, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Delivery notice sent for card %s", card.Number)
	msg.Ack()
}
