package outboxrepo

import (
	"context"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a repository bound to db, which is either the connection or
// the transaction of a unit of work.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts messages. New messages are stored as pending unless a status is given.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(messages))
	for _, msg := range messages {
		if err := msg.ID.Validate(); err != nil {
			return err
		}
		if msg.Status == ports.OutboxUnknown {
			msg.Status = ports.OutboxPending
		}
		dtos = append(dtos, fromPort(msg))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Claim selects deliverable messages oldest first, marks them Processing and counts the claim
// as an attempt. Pending messages are always deliverable. Failed messages, and Processing ones
// untouched since req.StaleBefore, are deliverable while they have attempts left, so a message
// whose dispatcher keeps dying is given up after req.MaxAttempts claims.
//
// Must run inside a transaction. On PostgreSQL the selected rows are locked with
// FOR UPDATE SKIP LOCKED so concurrent dispatchers split the backlog instead of sharing it.
func (r *GormOutboxRepository) Claim(ctx context.Context, req ports.ClaimRequest) ([]ports.OutboxMessage, error) {
	if req.Limit <= 0 {
		return []ports.OutboxMessage{}, nil
	}

	query := r.db.WithContext(ctx).
		Where("status = ?", int(ports.OutboxPending)).
		Or("status = ? AND attempts < ?", int(ports.OutboxFailed), req.MaxAttempts).
		Or("status = ? AND updated_at < ? AND attempts < ?", int(ports.OutboxProcessing), req.StaleBefore, req.MaxAttempts).
		Order("created_at, id").
		Limit(req.Limit)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	var dtos []OutboxMessageDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return []ports.OutboxMessage{}, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	err := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":     int(ports.OutboxProcessing),
			"attempts":   gorm.Expr("attempts + 1"),
			"updated_at": req.Now,
		}).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		dto.Status = int(ports.OutboxProcessing)
		dto.Attempts++
		dto.UpdatedAt = req.Now
		msg, convErr := toPort(dto)
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// MarkDone records a successful hand-off.
func (r *GormOutboxRepository) MarkDone(ctx context.Context, id kernel.UUID, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"status":       int(ports.OutboxDone),
		"completed_at": at,
		"updated_at":   at,
		"last_error":   nil,
	})
}

// MarkFailed records the cause of a failed attempt. The attempt itself was counted by Claim.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause string, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"status":     int(ports.OutboxFailed),
		"last_error": cause,
		"updated_at": at,
	})
}

func (r *GormOutboxRepository) update(ctx context.Context, id kernel.UUID, values map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}
	return nil
}
