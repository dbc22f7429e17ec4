package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"giftcard-register-be/internal/entity"
	"giftcard-register-be/internal/pkg/logger"
	"giftcard-register-be/internal/repository/unitofwork"
	"giftcard-register-be/pkg/events"
	"giftcard-register-be/pkg/nats"
)

// IRecorder appends entries to the activity trail. Recording is
// best-effort: a failed write is logged and swallowed so the primary
// operation is never rolled back because history could not be saved.
type IRecorder interface {
	Record(ctx context.Context, actor entity.Actor, action string, targetType entity.ActivityTargetType, targetId string, details map[string]interface{})
}

type recorder struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  *nats.Publisher
	logger     logger.ILogger
}

func NewRecorder(uowFactory unitofwork.RepositoryFactory, publisher *nats.Publisher, log logger.ILogger) IRecorder {
	return &recorder{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (r *recorder) Record(ctx context.Context, actor entity.Actor, action string, targetType entity.ActivityTargetType, targetId string, details map[string]interface{}) {
	entry := &entity.ActivityLog{
		Username:   actor.Username,
		Action:     action,
		TargetType: targetType,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if actor.UserId != uuid.Nil {
		id := actor.UserId
		entry.UserId = &id
	}
	if targetId != "" {
		entry.TargetId = &targetId
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	if _, err := uow.ActivityLogRepository().Create(ctx, entry); err != nil {
		r.logger.Warn("audit", "failed to record activity", map[string]interface{}{
			"action": action,
			"target": targetId,
			"error":  err.Error(),
		})
	}

	r.mirror(action, actor, targetType, targetId, details)
}

// mirror publishes the entry to the event bus for external consumers.
// Fire and forget, same policy as the database write.
func (r *recorder) mirror(action string, actor entity.Actor, targetType entity.ActivityTargetType, targetId string, details map[string]interface{}) {
	if r.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"action":      action,
		"username":    actor.Username,
		"target_type": string(targetType),
		"target_id":   targetId,
		"details":     details,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := r.publisher.Publish(ctx, events.New(action, payload)); err != nil {
			r.logger.Warn("audit", "failed to mirror activity event", map[string]interface{}{
				"action": action,
				"error":  err.Error(),
			})
		}
	}()
}
