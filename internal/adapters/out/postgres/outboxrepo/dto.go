// Package outboxrepo stores notifications in the same transaction as the schedule transitions
// that raise them, and hands them out to dispatcher runs.
package outboxrepo

import (
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxMessageDTO is the row of the outbox_messages table.
type OutboxMessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType   string         `gorm:"type:varchar(64);not null"`
	Topic       string         `gorm:"type:varchar(255);not null"`
	MessageKey  string         `gorm:"type:varchar(255);not null"`
	Payload     datatypes.JSON `gorm:"not null"`
	Status      int            `gorm:"type:smallint;not null;index:idx_outbox_status_created,priority:1"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   *string        `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"not null;index:idx_outbox_status_created,priority:2"`
	UpdatedAt   time.Time      `gorm:"not null"`
	CompletedAt *time.Time
}

// TableName overrides GORM's default naming convention to use "outbox_messages".
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(msg ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          msg.ID.Bytes(),
		EventType:   msg.EventType,
		Topic:       msg.Topic,
		MessageKey:  msg.Key,
		Payload:     datatypes.JSON(msg.Payload),
		Status:      int(msg.Status),
		Attempts:    msg.Attempts,
		LastError:   msg.LastError,
		CreatedAt:   msg.CreatedAt,
		UpdatedAt:   msg.UpdatedAt,
		CompletedAt: msg.CompletedAt,
	}
}

func toPort(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		Topic:       dto.Topic,
		Key:         dto.MessageKey,
		Payload:     []byte(dto.Payload),
		Status:      ports.OutboxStatus(dto.Status),
		Attempts:    dto.Attempts,
		LastError:   dto.LastError,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		CompletedAt: dto.CompletedAt,
	}, nil
}
