package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/pkg/logger"
	"giftcard-register-be/internal/repository/specification"
	"giftcard-register-be/internal/repository/unitofwork"
	"giftcard-register-be/pkg/audit"
	"giftcard-register-be/pkg/giftcard/expiry"
	"giftcard-register-be/pkg/giftcard/lifecycle"
	"giftcard-register-be/pkg/giftcard/numbering"
)

type IGiftCardService interface {
	Create(ctx context.Context, actor entity.Actor, req dto.CreateGiftCardRequest) (*dto.GiftCardResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.GiftCardResponse, error)
	List(ctx context.Context) (*dto.GiftCardListResponse, error)
	Search(ctx context.Context, req dto.SearchGiftCardRequest) (*dto.GiftCardListResponse, error)
	ChangeStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, req dto.ChangeStatusRequest) (*dto.GiftCardResponse, error)
	ExtendExpiration(ctx context.Context, actor entity.Actor, id uuid.UUID, req dto.ExtendExpirationRequest) (*dto.GiftCardResponse, error)
	Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error
	GetPublicView(ctx context.Context, number string) (*dto.GiftCardPublicResponse, error)
	AcceptTerms(ctx context.Context, number string) (*dto.GiftCardPublicResponse, error)
}

type giftCardService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  *numbering.Generator
	engine     *lifecycle.Engine
	recorder   audit.IRecorder
	publisher  IEventPublisherService
	cache      *gocache.Cache
	logger     logger.ILogger
}

func NewGiftCardService(
	uowFactory unitofwork.RepositoryFactory,
	generator *numbering.Generator,
	engine *lifecycle.Engine,
	recorder audit.IRecorder,
	publisher IEventPublisherService,
	cache *gocache.Cache,
	log logger.ILogger,
) IGiftCardService {
	return &giftCardService{
		uowFactory: uowFactory,
		generator:  generator,
		engine:     engine,
		recorder:   recorder,
		publisher:  publisher,
		cache:      cache,
		logger:     log,
	}
}

func (s *giftCardService) Create(ctx context.Context, actor entity.Actor, req dto.CreateGiftCardRequest) (*dto.GiftCardResponse, error) {
	if req.Amount < entity.MinAmount {
		return nil, &entity.ValidationError{Field: "amount", Reason: "below the minimum card value"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.GiftCardRepository()

	number := req.Number
	if number != "" {
		if !numbering.IsValid(number) {
			return nil, &entity.ValidationError{Field: "number", Reason: "must be exactly 8 digits"}
		}
	} else {
		existing, err := repo.Numbers(ctx)
		if err != nil {
			return nil, &entity.IOError{Op: "load card numbers", Err: err}
		}
		taken := make(map[string]struct{}, len(existing))
		for _, n := range existing {
			taken[n] = struct{}{}
		}
		number = s.generator.Generate(taken)
	}

	// The generator gives up after a bounded number of draws and custom
	// numbers come straight from the operator, so both paths re-check
	// against the store before committing.
	exists, err := repo.ExistsNumber(ctx, number)
	if err != nil {
		return nil, &entity.IOError{Op: "check card number", Err: err}
	}
	if exists {
		return nil, &entity.DuplicateNumberError{Number: number}
	}

	duration := req.DurationDays
	if duration <= 0 {
		duration = entity.DefaultDurationDays
	}

	now := time.Now()
	card := &entity.GiftCard{
		Number:       number,
		Buyer:        entity.Contact{Name: req.Buyer.Name, Email: req.Buyer.Email, Phone: req.Buyer.Phone},
		Recipient:    entity.Contact{Name: req.Recipient.Name, Email: req.Recipient.Email, Phone: req.Recipient.Phone},
		Amount:       req.Amount,
		Status:       entity.GiftCardStatusCreatedNotDelivered,
		DurationDays: duration,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := repo.Create(ctx, card)
	if err != nil {
		return nil, &entity.IOError{Op: "create gift card", Err: err}
	}

	s.recorder.Record(ctx, actor, entity.ActionGiftCardCreated, entity.TargetTypeGiftCard, created.Id.String(), map[string]interface{}{
		"number": created.Number,
		"amount": created.Amount,
	})

	s.logger.Info("giftcard_service", "gift card created", map[string]interface{}{
		"id":     created.Id.String(),
		"number": created.Number,
	})

	return s.toResponse(created), nil
}

func (s *giftCardService) GetById(ctx context.Context, id uuid.UUID) (*dto.GiftCardResponse, error) {
	card, err := s.findById(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(card), nil
}

func (s *giftCardService) List(ctx context.Context) (*dto.GiftCardListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.GiftCardRepository()

	cards, err := repo.FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, &entity.IOError{Op: "list gift cards", Err: err}
	}

	items := make([]dto.GiftCardResponse, len(cards))
	for i, card := range cards {
		items[i] = *s.toResponse(card)
	}
	return &dto.GiftCardListResponse{Items: items, Total: int64(len(items))}, nil
}

func (s *giftCardService) Search(ctx context.Context, req dto.SearchGiftCardRequest) (*dto.GiftCardListResponse, error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.GiftCardRepository()

	specs := specification.ForGiftCardFilter(*filter)
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	cards, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, &entity.IOError{Op: "search gift cards", Err: err}
	}

	items := make([]dto.GiftCardResponse, len(cards))
	for i, card := range cards {
		items[i] = *s.toResponse(card)
	}
	return &dto.GiftCardListResponse{Items: items, Total: int64(len(items))}, nil
}

func (s *giftCardService) ChangeStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, req dto.ChangeStatusRequest) (*dto.GiftCardResponse, error) {
	card, err := s.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := card.Status
	requested := entity.GiftCardStatus(req.Status)

	updated, err := s.engine.ComputeTransition(*card, requested, actor.Role, lifecycle.Fields{
		Notes:  req.Notes,
		Artist: req.Artist,
	})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	saved, err := uow.GiftCardRepository().Update(ctx, &updated)
	if err != nil {
		return nil, &entity.IOError{Op: "update gift card", Err: err}
	}

	s.recorder.Record(ctx, actor, entity.ActionGiftCardStatusChanged, entity.TargetTypeGiftCard, saved.Id.String(), map[string]interface{}{
		"number": saved.Number,
		"from":   string(previous),
		"to":     string(saved.Status),
	})

	if saved.Status == entity.GiftCardStatusDelivered && previous != entity.GiftCardStatusDelivered {
		if err := s.publisher.PublishGiftCardDelivered(saved); err != nil {
			s.logger.Warn("giftcard_service", "failed to publish delivery event", map[string]interface{}{
				"number": saved.Number,
				"error":  err.Error(),
			})
		}
	}

	s.invalidatePublicView(saved.Number)
	return s.toResponse(saved), nil
}

func (s *giftCardService) ExtendExpiration(ctx context.Context, actor entity.Actor, id uuid.UUID, req dto.ExtendExpirationRequest) (*dto.GiftCardResponse, error) {
	card, err := s.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	extended, err := expiry.Extend(card.ExpiresAt, req.Days)
	if err != nil {
		return nil, err
	}
	previous := *card.ExpiresAt
	card.ExpiresAt = &extended
	card.UpdatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	saved, err := uow.GiftCardRepository().Update(ctx, card)
	if err != nil {
		return nil, &entity.IOError{Op: "extend gift card", Err: err}
	}

	s.recorder.Record(ctx, actor, entity.ActionGiftCardExtended, entity.TargetTypeGiftCard, saved.Id.String(), map[string]interface{}{
		"number":     saved.Number,
		"days":       req.Days,
		"expired_at": previous.Format(time.RFC3339),
		"expires_at": extended.Format(time.RFC3339),
	})

	s.invalidatePublicView(saved.Number)
	return s.toResponse(saved), nil
}

func (s *giftCardService) Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	card, err := s.findById(ctx, id)
	if err != nil {
		return err
	}

	// Recorded before the row disappears; the trail references the card
	// by id and number only, so it survives the deletion.
	s.recorder.Record(ctx, actor, entity.ActionGiftCardDeleted, entity.TargetTypeGiftCard, card.Id.String(), map[string]interface{}{
		"number": card.Number,
		"status": string(card.Status),
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.GiftCardRepository().Delete(ctx, specification.ByID{ID: card.Id}); err != nil {
		return &entity.IOError{Op: "delete gift card", Err: err}
	}

	s.invalidatePublicView(card.Number)
	return nil
}

func (s *giftCardService) GetPublicView(ctx context.Context, number string) (*dto.GiftCardPublicResponse, error) {
	if cached, found := s.cache.Get(publicViewCacheKey(number)); found {
		return cached.(*dto.GiftCardPublicResponse), nil
	}

	card, err := s.findByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	resp := toPublicResponse(card.PublicView())
	s.cache.Set(publicViewCacheKey(number), resp, gocache.DefaultExpiration)
	return resp, nil
}

func (s *giftCardService) AcceptTerms(ctx context.Context, number string) (*dto.GiftCardPublicResponse, error) {
	card, err := s.findByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	// First acceptance wins; repeats are acknowledged without rewriting
	// the original timestamp.
	if card.TermsAcceptedAt == nil {
		now := time.Now()
		card.TermsAcceptedAt = &now
		card.UpdatedAt = now

		uow := s.uowFactory.NewUnitOfWork(ctx)
		saved, err := uow.GiftCardRepository().Update(ctx, card)
		if err != nil {
			return nil, &entity.IOError{Op: "accept terms", Err: err}
		}
		card = saved

		s.recorder.Record(ctx, entity.SystemActor, entity.ActionTermsAccepted, entity.TargetTypeTerms, card.Id.String(), map[string]interface{}{
			"number": card.Number,
		})
		s.invalidatePublicView(card.Number)
	}

	return toPublicResponse(card.PublicView()), nil
}

func (s *giftCardService) findById(ctx context.Context, id uuid.UUID) (*entity.GiftCard, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	card, err := uow.GiftCardRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, &entity.IOError{Op: "find gift card", Err: err}
	}
	if card == nil {
		return nil, &entity.NotFoundError{Resource: "gift card", Ref: id.String()}
	}
	return card, nil
}

func (s *giftCardService) findByNumber(ctx context.Context, number string) (*entity.GiftCard, error) {
	if !numbering.IsValid(number) {
		return nil, &entity.ValidationError{Field: "number", Reason: "must be exactly 8 digits"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	card, err := uow.GiftCardRepository().FindOne(ctx, specification.ByNumber{Number: number})
	if err != nil {
		return nil, &entity.IOError{Op: "find gift card", Err: err}
	}
	if card == nil {
		return nil, &entity.NotFoundError{Resource: "gift card", Ref: number}
	}
	return card, nil
}

func (s *giftCardService) buildFilter(req dto.SearchGiftCardRequest) (*entity.GiftCardFilter, error) {
	filter := &entity.GiftCardFilter{
		Number:    req.Number,
		Email:     req.Email,
		Phone:     req.Phone,
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
	}

	if req.Status != "" {
		status := entity.GiftCardStatus(req.Status)
		if !entity.IsValidStatus(status) {
			return nil, &entity.ValidationError{Field: "status", Reason: "unknown status " + req.Status}
		}
		filter.Status = status
	}

	if req.DateFrom != "" {
		from, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			return nil, &entity.ValidationError{Field: "date_from", Reason: "expected YYYY-MM-DD"}
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			return nil, &entity.ValidationError{Field: "date_to", Reason: "expected YYYY-MM-DD"}
		}
		// Inclusive of the whole end day.
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.DateTo = &end
	}

	return filter, nil
}

func (s *giftCardService) invalidatePublicView(number string) {
	s.cache.Delete(publicViewCacheKey(number))
}

func publicViewCacheKey(number string) string {
	return "public_view:" + number
}

func (s *giftCardService) toResponse(card *entity.GiftCard) *dto.GiftCardResponse {
	resp := &dto.GiftCardResponse{
		Id:              card.Id,
		Number:          card.Number,
		Buyer:           dto.ContactResponse{Name: card.Buyer.Name, Email: card.Buyer.Email, Phone: card.Buyer.Phone},
		Recipient:       dto.ContactResponse{Name: card.Recipient.Name, Email: card.Recipient.Email, Phone: card.Recipient.Phone},
		Amount:          card.Amount,
		Status:          string(card.Status),
		DurationDays:    card.DurationDays,
		Notes:           card.Notes,
		Artist:          card.Artist,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
		DeliveredAt:     card.DeliveredAt,
		ExpiresAt:       card.ExpiresAt,
		RedeemedAt:      card.RedeemedAt,
		CancelledAt:     card.CancelledAt,
		TermsAcceptedAt: card.TermsAcceptedAt,
	}

	now := time.Now()
	if days, ok := expiry.DaysUntil(card.ExpiresAt, now); ok {
		resp.DaysUntilExpiration = &days
		resp.AboutToExpire = expiry.AboutToExpire(card.ExpiresAt, now, expiry.DefaultWarningDays)
	}
	return resp
}

func toPublicResponse(view *entity.GiftCardPublicView) *dto.GiftCardPublicResponse {
	return &dto.GiftCardPublicResponse{
		Number:          view.Number,
		Amount:          view.Amount,
		Status:          string(view.Status),
		DeliveredAt:     view.DeliveredAt,
		ExpiresAt:       view.ExpiresAt,
		TermsAcceptedAt: view.TermsAcceptedAt,
	}
}
