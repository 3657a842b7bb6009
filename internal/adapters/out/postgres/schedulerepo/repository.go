package schedulerepo

import (
	"context"
	"errors"
	"strings"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// GormScheduleRepository implements ports.ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduleRepository creates a repository bound to db, which is either the connection
// or the transaction of a unit of work.
func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new proposal. The partial unique index rejects a second Proposed row for the
// same order; that rejection is reported as errs.ConflictingProposalError without an
// existing id, because inside the failed transaction the winner can no longer be read.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewConflictingProposalErrorWithCause(aggregate.OrderID().String(), "", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Resolve writes the response fields of a confirmed or rejected schedule, but only while the
// stored row is still Proposed.
func (r *GormScheduleRepository) Resolve(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.Status().IsTerminal() {
		return errs.NewValueIsInvalidError("schedule status must be Confirmed or Rejected to resolve")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ScheduleDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(schedule.Proposed)).
		Updates(map[string]any{
			"status":         dto.Status,
			"confirmer_id":   dto.ConfirmerID,
			"response_notes": dto.ResponseNotes,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ScheduleDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("schedule", aggregate.ID().String())
		}
		return ports.ErrScheduleNotProposed
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a schedule by ID.
func (r *GormScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetActiveByOrder retrieves the order's Proposed schedule. The partial unique index makes this
// a point lookup.
func (r *GormScheduleRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*schedule.Schedule, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(schedule.Proposed)).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active schedule of order", orderID.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// ListByOrder retrieves every schedule of the order, oldest first.
func (r *GormScheduleRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*schedule.Schedule, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ScheduleDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	schedules := make([]*schedule.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// isDuplicateKey recognizes a unique violation whether or not the dialector translated it.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
