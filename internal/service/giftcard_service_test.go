package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/repository/contract"
	"giftcard-register-be/internal/repository/specification"
	"giftcard-register-be/internal/repository/unitofwork"
	"giftcard-register-be/pkg/giftcard/lifecycle"
	"giftcard-register-be/pkg/giftcard/numbering"
)

// In-memory fakes. Specifications are interpreted by type switch so the
// fakes stay free of any database dependency.

type fakeGiftCardRepo struct {
	mu    sync.Mutex
	cards map[uuid.UUID]*entity.GiftCard
}

func newFakeGiftCardRepo() *fakeGiftCardRepo {
	return &fakeGiftCardRepo{cards: make(map[uuid.UUID]*entity.GiftCard)}
}

func (f *fakeGiftCardRepo) Create(ctx context.Context, card *entity.GiftCard) (*entity.GiftCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *card
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	f.cards[c.Id] = &c
	out := c
	return &out, nil
}

func (f *fakeGiftCardRepo) Update(ctx context.Context, card *entity.GiftCard) (*entity.GiftCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *card
	f.cards[c.Id] = &c
	out := c
	return &out, nil
}

func (f *fakeGiftCardRepo) Delete(ctx context.Context, specs ...specification.Specification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			delete(f.cards, byID.ID)
		}
	}
	return nil
}

func (f *fakeGiftCardRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GiftCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c, ok := f.cards[s.ID]; ok {
				out := *c
				return &out, nil
			}
			return nil, nil
		case specification.ByNumber:
			for _, c := range f.cards {
				if c.Number == s.Number {
					out := *c
					return &out, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (f *fakeGiftCardRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GiftCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.GiftCard
	for _, c := range f.cards {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeGiftCardRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.cards)), nil
}

func (f *fakeGiftCardRepo) ExistsNumber(ctx context.Context, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cards {
		if c.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGiftCardRepo) Numbers(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var numbers []string
	for _, c := range f.cards {
		numbers = append(numbers, c.Number)
	}
	return numbers, nil
}

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries []*entity.ActivityLog
}

func (f *fakeActivityRepo) Create(ctx context.Context, log *entity.ActivityLog) (*entity.ActivityLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := *log
	if l.Id == uuid.Nil {
		l.Id = uuid.New()
	}
	f.entries = append(f.entries, &l)
	out := l
	return &out, nil
}

func (f *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.ActivityLog, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.entries)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := *user
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	f.users = append(f.users, &u)
	out := u
	return &out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	return user, nil
}

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByEmail); ok {
			for _, u := range f.users {
				if u.Email == byEmail.Email {
					out := *u
					return &out, nil
				}
			}
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

type fakeUnitOfWork struct {
	giftCards *fakeGiftCardRepo
	activity  *fakeActivityRepo
	users     *fakeUserRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) GiftCardRepository() contract.IGiftCardRepository {
	return f.giftCards
}

func (f *fakeUnitOfWork) ActivityLogRepository() contract.IActivityLogRepository {
	return f.activity
}

func (f *fakeUnitOfWork) UserRepository() contract.IUserRepository {
	return f.users
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type recordedActivity struct {
	actor      entity.Actor
	action     string
	targetType entity.ActivityTargetType
	targetId   string
	details    map[string]interface{}
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []recordedActivity
}

func (f *fakeRecorder) Record(ctx context.Context, actor entity.Actor, action string, targetType entity.ActivityTargetType, targetId string, details map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, recordedActivity{actor, action, targetType, targetId, details})
}

func (f *fakeRecorder) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.records))
	for i, r := range f.records {
		out[i] = r.action
	}
	return out
}

type fakeEventPublisher struct {
	mu        sync.Mutex
	delivered []uuid.UUID
}

func (f *fakeEventPublisher) PublishGiftCardDelivered(card *entity.GiftCard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delivered = append(f.delivered, card.Id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type serviceFixture struct {
	service   IGiftCardService
	repo      *fakeGiftCardRepo
	recorder  *fakeRecorder
	publisher *fakeEventPublisher
	cache     *gocache.Cache
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()

	repo := newFakeGiftCardRepo()
	uow := &fakeUnitOfWork{
		giftCards: repo,
		activity:  &fakeActivityRepo{},
		users:     &fakeUserRepo{},
	}
	recorder := &fakeRecorder{}
	publisher := &fakeEventPublisher{}
	cache := gocache.New(30*time.Second, time.Minute)

	svc := NewGiftCardService(
		&fakeUowFactory{uow: uow},
		numbering.New(),
		lifecycle.New(nil),
		recorder,
		publisher,
		cache,
		noopLogger{},
	)

	return &serviceFixture{
		service:   svc,
		repo:      repo,
		recorder:  recorder,
		publisher: publisher,
		cache:     cache,
	}
}

var testAdmin = entity.Actor{UserId: uuid.New(), Username: "ines", Role: entity.UserRoleAdmin}
var testSuperadmin = entity.Actor{UserId: uuid.New(), Username: "marta", Role: entity.UserRoleSuperadmin}

func validCreateRequest() dto.CreateGiftCardRequest {
	return dto.CreateGiftCardRequest{
		Buyer:     dto.ContactRequest{Name: "Ana Gomez", Email: "ana@example.com", Phone: "+34600111222"},
		Recipient: dto.ContactRequest{Name: "Luis Rey", Email: "luis@example.com", Phone: "+34600333444"},
		Amount:    5000,
	}
}

func TestCreateGeneratesNumberAndDefaults(t *testing.T) {
	fx := newFixture(t)

	res, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	require.True(t, numbering.IsValid(res.Number))
	require.Equal(t, string(entity.GiftCardStatusCreatedNotDelivered), res.Status)
	require.Equal(t, entity.DefaultDurationDays, res.DurationDays)
	require.Nil(t, res.DeliveredAt)
	require.Nil(t, res.ExpiresAt)

	require.Equal(t, []string{entity.ActionGiftCardCreated}, fx.recorder.actions())
}

func TestCreateWithCustomNumber(t *testing.T) {
	fx := newFixture(t)

	req := validCreateRequest()
	req.Number = "00012345"

	res, err := fx.service.Create(context.Background(), testAdmin, req)
	require.NoError(t, err)
	require.Equal(t, "00012345", res.Number)
}

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	fx := newFixture(t)

	req := validCreateRequest()
	req.Number = "12345678"
	_, err := fx.service.Create(context.Background(), testAdmin, req)
	require.NoError(t, err)

	_, err = fx.service.Create(context.Background(), testAdmin, req)
	var dup *entity.DuplicateNumberError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "12345678", dup.Number)
}

func TestCreateRejectsMalformedNumber(t *testing.T) {
	fx := newFixture(t)

	for _, number := range []string{"1234567", "123456789", "12a45678"} {
		req := validCreateRequest()
		req.Number = number
		_, err := fx.service.Create(context.Background(), testAdmin, req)
		var verr *entity.ValidationError
		require.ErrorAs(t, err, &verr, "number %q", number)
	}
}

func TestCreateRejectsAmountBelowMinimum(t *testing.T) {
	fx := newFixture(t)

	req := validCreateRequest()
	req.Amount = 999
	_, err := fx.service.Create(context.Background(), testAdmin, req)
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "amount", verr.Field)
}

func TestChangeStatusToDeliveredDerivesExpiry(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	res, err := fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusDelivered),
	})
	require.NoError(t, err)

	require.Equal(t, string(entity.GiftCardStatusDelivered), res.Status)
	require.NotNil(t, res.DeliveredAt)
	require.NotNil(t, res.ExpiresAt)
	expected := res.DeliveredAt.AddDate(0, 0, entity.DefaultDurationDays)
	require.WithinDuration(t, expected, *res.ExpiresAt, time.Second)

	require.Equal(t, []uuid.UUID{created.Id}, fx.publisher.delivered)
}

func TestChangeStatusAdminCannotCancel(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	_, err = fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusCancelled),
		Notes:  "customer changed their mind",
	})
	var perr *entity.PermissionError
	require.ErrorAs(t, err, &perr)

	// Nothing persisted.
	stored, err := fx.service.GetById(context.Background(), created.Id)
	require.NoError(t, err)
	require.Equal(t, string(entity.GiftCardStatusCreatedNotDelivered), stored.Status)
}

func TestChangeStatusSameStatusIsRejectedNoOp(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	_, err = fx.service.ChangeStatus(context.Background(), testSuperadmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusCreatedNotDelivered),
	})
	var noop *entity.NoOpError
	require.ErrorAs(t, err, &noop)
}

func TestRedeemRequiresArtistAndNotes(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)
	_, err = fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusDelivered),
	})
	require.NoError(t, err)

	_, err = fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusRedeemed),
		Notes:  "full sleeve session",
	})
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "artist", verr.Field)

	res, err := fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusRedeemed),
		Notes:  "full sleeve session",
		Artist: "Maya",
	})
	require.NoError(t, err)
	require.Equal(t, "Maya", res.Artist)
	require.NotNil(t, res.RedeemedAt)
}

func TestExtendExpirationIsAdditive(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)
	delivered, err := fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusDelivered),
	})
	require.NoError(t, err)

	res, err := fx.service.ExtendExpiration(context.Background(), testAdmin, created.Id, dto.ExtendExpirationRequest{Days: 30})
	require.NoError(t, err)
	require.WithinDuration(t, delivered.ExpiresAt.AddDate(0, 0, 30), *res.ExpiresAt, time.Second)
}

func TestExtendUndeliveredCardFails(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	_, err = fx.service.ExtendExpiration(context.Background(), testAdmin, created.Id, dto.ExtendExpirationRequest{Days: 30})
	var perr *entity.PreconditionError
	require.ErrorAs(t, err, &perr)
}

func TestDeleteRecordsActivityBeforeRemoval(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(context.Background(), testSuperadmin, created.Id))

	_, err = fx.service.GetById(context.Background(), created.Id)
	var nferr *entity.NotFoundError
	require.ErrorAs(t, err, &nferr)

	actions := fx.recorder.actions()
	require.Contains(t, actions, entity.ActionGiftCardDeleted)
}

func TestPublicViewStripsContactDetails(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	view, err := fx.service.GetPublicView(context.Background(), created.Number)
	require.NoError(t, err)

	require.Equal(t, created.Number, view.Number)
	require.Equal(t, created.Amount, view.Amount)
	require.Equal(t, created.Status, view.Status)
	// The public projection carries nothing else; a stale cached copy
	// must also be served until invalidated.
	cached, err := fx.service.GetPublicView(context.Background(), created.Number)
	require.NoError(t, err)
	require.Equal(t, view, cached)
}

func TestPublicViewUnknownNumber(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.GetPublicView(context.Background(), "99999999")
	var nferr *entity.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestAcceptTermsFirstWriteWins(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)

	first, err := fx.service.AcceptTerms(context.Background(), created.Number)
	require.NoError(t, err)
	require.NotNil(t, first.TermsAcceptedAt)

	time.Sleep(10 * time.Millisecond)

	second, err := fx.service.AcceptTerms(context.Background(), created.Number)
	require.NoError(t, err)
	require.True(t, first.TermsAcceptedAt.Equal(*second.TermsAcceptedAt))

	// Exactly one terms entry in the trail.
	count := 0
	for _, a := range fx.recorder.actions() {
		if a == entity.ActionTermsAccepted {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestSuperadminEscapeHatchPreservesTimestamps(t *testing.T) {
	fx := newFixture(t)

	created, err := fx.service.Create(context.Background(), testAdmin, validCreateRequest())
	require.NoError(t, err)
	delivered, err := fx.service.ChangeStatus(context.Background(), testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusDelivered),
	})
	require.NoError(t, err)

	// Superadmin walks the card back, then re-delivers.
	_, err = fx.service.ChangeStatus(context.Background(), testSuperadmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusCreatedNotDelivered),
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	redelivered, err := fx.service.ChangeStatus(context.Background(), testSuperadmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusDelivered),
	})
	require.NoError(t, err)
	require.True(t, delivered.DeliveredAt.Equal(*redelivered.DeliveredAt))
	require.True(t, delivered.ExpiresAt.Equal(*redelivered.ExpiresAt))
}

func TestLifecycleEndToEnd(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, testAdmin, validCreateRequest())
	require.NoError(t, err)

	_, err = fx.service.ChangeStatus(ctx, testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusDelivered),
	})
	require.NoError(t, err)

	final, err := fx.service.ChangeStatus(ctx, testAdmin, created.Id, dto.ChangeStatusRequest{
		Status: string(entity.GiftCardStatusRedeemed),
		Notes:  "back piece, session one",
		Artist: "Joan",
	})
	require.NoError(t, err)

	require.Equal(t, string(entity.GiftCardStatusRedeemed), final.Status)
	require.NotNil(t, final.DeliveredAt)
	require.NotNil(t, final.RedeemedAt)
	require.Equal(t, "Joan", final.Artist)

	require.Equal(t, []string{
		entity.ActionGiftCardCreated,
		entity.ActionGiftCardStatusChanged,
		entity.ActionGiftCardStatusChanged,
	}, fx.recorder.actions())
}

func TestGetByIdUnknown(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.GetById(context.Background(), uuid.New())
	var nferr *entity.NotFoundError
	require.ErrorAs(t, err, &nferr)
	require.False(t, errors.Is(err, context.Canceled))
}
