package queries

import (
	"context"

	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetActiveProposalQueryHandler reads the order's Proposed schedule.
type GetActiveProposalQueryHandler struct {
	db         *gorm.DB
	authorizer ports.RoleAuthorizer
}

// NewGetActiveProposalQueryHandler creates the handler.
func NewGetActiveProposalQueryHandler(db *gorm.DB, authorizer ports.RoleAuthorizer) GetActiveProposalQueryHandler {
	return GetActiveProposalQueryHandler{db: db, authorizer: authorizer}
}

// Handle returns the Proposed schedule, or errs.ObjectNotFoundError when the order has none.
// Only the order's parties may ask.
func (h GetActiveProposalQueryHandler) Handle(ctx context.Context, query GetActiveProposalQuery) (ScheduleView, error) {
	if err := query.Validate(); err != nil {
		return ScheduleView{}, err
	}

	if err := authorizeView(ctx, h.db, h.authorizer, query.OrderID(), query.ActorID()); err != nil {
		return ScheduleView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectSchedules+`
		WHERE order_id = ? AND status = ?
		LIMIT 1
	`, query.OrderID().Bytes(), int(schedule.Proposed)).Rows()
	if err != nil {
		return ScheduleView{}, err
	}
	defer rows.Close()

	views, err := scanSchedules(rows)
	if err != nil {
		return ScheduleView{}, err
	}
	if len(views) == 0 {
		return ScheduleView{}, errs.NewObjectNotFoundError("active schedule of order", query.OrderID().String())
	}

	return views[0], nil
}
