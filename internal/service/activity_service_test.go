package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
)

func newActivityFixture(t *testing.T) (IActivityService, *fakeActivityRepo) {
	t.Helper()

	activity := &fakeActivityRepo{}
	uow := &fakeUnitOfWork{
		giftCards: newFakeGiftCardRepo(),
		activity:  activity,
		users:     &fakeUserRepo{},
	}
	return NewActivityService(&fakeUowFactory{uow: uow}), activity
}

func TestActivityQueryReturnsEntries(t *testing.T) {
	svc, repo := newActivityFixture(t)

	_, err := repo.Create(context.Background(), &entity.ActivityLog{
		Username:   "ines",
		Action:     entity.ActionGiftCardCreated,
		TargetType: entity.TargetTypeGiftCard,
	})
	require.NoError(t, err)

	res, err := svc.Query(context.Background(), dto.ActivityQueryRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Total)
	require.Equal(t, "ines", res.Items[0].Username)
}

func TestActivityQueryValidation(t *testing.T) {
	svc, _ := newActivityFixture(t)

	cases := []struct {
		name  string
		req   dto.ActivityQueryRequest
		field string
	}{
		{"target type without id", dto.ActivityQueryRequest{TargetType: "giftcard"}, "target_id"},
		{"bad date", dto.ActivityQueryRequest{Date: "29-08-2026"}, "date"},
		{"bad user id", dto.ActivityQueryRequest{UserId: "not-a-uuid"}, "user_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Query(context.Background(), tc.req)
			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}
