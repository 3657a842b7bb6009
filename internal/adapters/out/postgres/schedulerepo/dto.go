// Package schedulerepo persists Schedule aggregates. The table carries a partial unique index
// on order_id over Proposed rows, which is what keeps an order at a single active proposal
// when two parties propose at the same moment.
package schedulerepo

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// SingleProposedIndex names the partial unique index over Proposed schedules.
const SingleProposedIndex = "idx_schedules_single_proposed"

// ScheduleDTO is the row of the schedules table. Candidate fields are flattened into columns
// so that the read side can filter and sort on them.
type ScheduleDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_schedules_order_created,priority:1;uniqueIndex:idx_schedules_single_proposed,where:status = 1"`
	ProposerID  uuid.UUID  `gorm:"type:uuid;not null"`
	ConfirmerID *uuid.UUID `gorm:"type:uuid"`
	Status      int        `gorm:"type:smallint;not null;index"`

	DeliveryDate      string   `gorm:"type:varchar(10);not null"`
	TimeOfDay         string   `gorm:"type:varchar(5);not null"`
	Zone              string   `gorm:"type:varchar(64);not null"`
	WeightKg          *float64 `gorm:"type:double precision"`
	RouteTag          string   `gorm:"type:text"`
	ExemptionCategory *string  `gorm:"type:varchar(64)"`
	ExemptionIsExempt *bool
	Address           string `gorm:"type:text"`
	Notes             string `gorm:"type:text"`

	ResponseNotes *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null;index:idx_schedules_order_created,priority:2"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "schedules".
func (ScheduleDTO) TableName() string {
	return "schedules"
}

func fromDomain(aggregate *schedule.Schedule) ScheduleDTO {
	dto := ScheduleDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		ProposerID:    aggregate.Proposer().Bytes(),
		Status:        int(aggregate.Status()),
		ResponseNotes: aggregate.ResponseNotes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
	if confirmer := aggregate.Confirmer(); confirmer != nil {
		raw := confirmer.Bytes()
		dto.ConfirmerID = &raw
	}

	c := aggregate.Candidate()
	dto.DeliveryDate = c.Date().String()
	dto.TimeOfDay = c.TimeOfDay().String()
	dto.Zone = c.Zone().String()
	if kg, ok := c.WeightKg(); ok {
		dto.WeightKg = &kg
	}
	dto.RouteTag = c.RouteTag()
	if claim, ok := c.Exemption(); ok {
		category := claim.Category.String()
		isExempt := claim.IsExempt
		dto.ExemptionCategory = &category
		dto.ExemptionIsExempt = &isExempt
	}
	dto.Address = c.Address()
	dto.Notes = c.Notes()

	return dto
}

// ToDomain rebuilds the aggregate through schedule.Restore, so the status invariants are
// checked on every read.
func ToDomain(dto ScheduleDTO) (*schedule.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	proposer, err := kernel.UUIDFromBytes(dto.ProposerID[:])
	if err != nil {
		return nil, err
	}

	var confirmer *kernel.UUID
	if dto.ConfirmerID != nil {
		cID, confirmerErr := kernel.UUIDFromBytes((*dto.ConfirmerID)[:])
		if confirmerErr != nil {
			return nil, confirmerErr
		}
		confirmer = &cID
	}

	candidate, err := candidateFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return schedule.Restore(
		id,
		orderID,
		proposer,
		confirmer,
		schedule.Status(dto.Status),
		candidate,
		dto.ResponseNotes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func candidateFromDTO(dto ScheduleDTO) (schedule.Candidate, error) {
	date, err := kernel.ParseDate(dto.DeliveryDate)
	if err != nil {
		return schedule.Candidate{}, err
	}
	tod, err := kernel.ParseTimeOfDay(dto.TimeOfDay)
	if err != nil {
		return schedule.Candidate{}, err
	}

	// Unknown codes restore as ZoneUnknown/ExemptionUnknown; the row was accepted under a
	// policy that knew them.
	zone, _ := policy.ParseZone(dto.Zone)

	opts := []schedule.CandidateOption{
		schedule.WithRouteTag(dto.RouteTag),
		schedule.WithAddress(dto.Address),
		schedule.WithNotes(dto.Notes),
	}
	if dto.WeightKg != nil {
		opts = append(opts, schedule.WithWeightKg(*dto.WeightKg))
	}
	if dto.ExemptionCategory != nil {
		category, _ := policy.ParseExemptionCategory(*dto.ExemptionCategory)
		isExempt := dto.ExemptionIsExempt != nil && *dto.ExemptionIsExempt
		opts = append(opts, schedule.WithExemption(category, isExempt))
	}

	return schedule.NewCandidate(date, tod, zone, opts...)
}
