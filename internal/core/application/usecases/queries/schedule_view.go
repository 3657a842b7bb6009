// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the presentation layer.
package queries

import (
	"context"
	"database/sql"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleView is the read model of a schedule record.
type ScheduleView struct {
	ID            kernel.UUID              `json:"id"`
	OrderID       kernel.UUID              `json:"orderId"`
	ProposerID    kernel.UUID              `json:"proposerId"`
	ConfirmerID   *kernel.UUID             `json:"confirmerId,omitempty"`
	Status        string                   `json:"status"`
	Date          string                   `json:"date"`
	TimeOfDay     string                   `json:"timeOfDay"`
	Zone          string                   `json:"zone"`
	WeightKg      *float64                 `json:"weightKg,omitempty"`
	RouteTag      string                   `json:"routeTag,omitempty"`
	Exemption     *schedule.ExemptionClaim `json:"exemption,omitempty"`
	Address       string                   `json:"address,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	ResponseNotes *string                  `json:"responseNotes,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// NewScheduleView renders an aggregate, e.g. the result of a command, as the read model.
func NewScheduleView(s *schedule.Schedule) ScheduleView {
	c := s.Candidate()
	view := ScheduleView{
		ID:            s.ID(),
		OrderID:       s.OrderID(),
		ProposerID:    s.Proposer(),
		ConfirmerID:   s.Confirmer(),
		Status:        s.Status().String(),
		Date:          c.Date().String(),
		TimeOfDay:     c.TimeOfDay().String(),
		Zone:          c.Zone().String(),
		RouteTag:      c.RouteTag(),
		Address:       c.Address(),
		Notes:         c.Notes(),
		ResponseNotes: s.ResponseNotes(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
	if kg, ok := c.WeightKg(); ok {
		view.WeightKg = &kg
	}
	if claim, ok := c.Exemption(); ok {
		view.Exemption = &claim
	}
	return view
}

const selectSchedules = `
	SELECT
		id,
		order_id,
		proposer_id,
		confirmer_id,
		status,
		delivery_date,
		time_of_day,
		zone,
		weight_kg,
		route_tag,
		exemption_category,
		exemption_is_exempt,
		address,
		notes,
		response_notes,
		created_at,
		updated_at
	FROM schedules
`

func scanSchedules(rows *sql.Rows) ([]ScheduleView, error) {
	views := make([]ScheduleView, 0)

	for rows.Next() {
		var (
			view                    ScheduleView
			id, orderID, proposerID uuid.UUID
			confirmerID             uuid.NullUUID
			status                  int
			weightKg                sql.NullFloat64
			exemptionCategory       sql.NullString
			exemptionIsExempt       sql.NullBool
			responseNotes           sql.NullString
		)

		err := rows.Scan(
			&id,
			&orderID,
			&proposerID,
			&confirmerID,
			&status,
			&view.Date,
			&view.TimeOfDay,
			&view.Zone,
			&weightKg,
			&view.RouteTag,
			&exemptionCategory,
			&exemptionIsExempt,
			&view.Address,
			&view.Notes,
			&responseNotes,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if view.ProposerID, err = kernel.UUIDFromBytes(proposerID[:]); err != nil {
			return nil, err
		}
		if confirmerID.Valid {
			confirmer, confirmerErr := kernel.UUIDFromBytes(confirmerID.UUID[:])
			if confirmerErr != nil {
				return nil, confirmerErr
			}
			view.ConfirmerID = &confirmer
		}

		view.Status = schedule.Status(status).String()
		if weightKg.Valid {
			view.WeightKg = &weightKg.Float64
		}
		if exemptionCategory.Valid {
			category, _ := policy.ParseExemptionCategory(exemptionCategory.String)
			view.Exemption = &schedule.ExemptionClaim{
				Category: category,
				IsExempt: exemptionIsExempt.Valid && exemptionIsExempt.Bool,
			}
		}
		if responseNotes.Valid {
			view.ResponseNotes = &responseNotes.String
		}
		view.CreatedAt = view.CreatedAt.UTC()
		view.UpdatedAt = view.UpdatedAt.UTC()

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// authorizeView loads the order's parties and checks that actor may view its schedules.
func authorizeView(
	ctx context.Context,
	db *gorm.DB,
	authorizer ports.RoleAuthorizer,
	orderID, actor kernel.UUID,
) error {
	var row struct {
		BuyerID  uuid.UUID
		SellerID uuid.UUID
		Status   int
	}
	result := db.WithContext(ctx).Raw(`
		SELECT
			buyer_id,
			seller_id,
			status
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Scan(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	buyer, err := kernel.UUIDFromBytes(row.BuyerID[:])
	if err != nil {
		return err
	}
	seller, err := kernel.UUIDFromBytes(row.SellerID[:])
	if err != nil {
		return err
	}
	ord, err := order.RestoreOrder(orderID, buyer, seller, order.Status(row.Status))
	if err != nil {
		return err
	}

	role, ok := ord.Role(actor)
	if !ok {
		return errs.NewUnauthorizedError(actor.String(), "not a party to order "+orderID.String())
	}
	allowed, err := authorizer.Authorize(role, ports.ActionView)
	if err != nil {
		return err
	}
	if !allowed {
		return errs.NewUnauthorizedError(actor.String(), "the "+role.String()+" may not view schedules")
	}
	return nil
}
