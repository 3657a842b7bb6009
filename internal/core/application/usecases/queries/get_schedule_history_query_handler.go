package queries

import (
	"context"

	"scheduling/internal/core/ports"

	"gorm.io/gorm"
)

// GetScheduleHistoryQueryHandler reads the negotiation history of an order.
//
// Example:
//
//	handler := NewGetScheduleHistoryQueryHandler(db, authorizer)
//	query, _ := NewGetScheduleHistoryQuery(orderID, actorID)
//
//	history, err := handler.Handle(ctx, query)
//	for _, record := range history {
//	    fmt.Printf("%s %s %s\n", record.Date, record.TimeOfDay, record.Status)
//	}
type GetScheduleHistoryQueryHandler struct {
	db         *gorm.DB
	authorizer ports.RoleAuthorizer
}

// NewGetScheduleHistoryQueryHandler creates the handler.
func NewGetScheduleHistoryQueryHandler(db *gorm.DB, authorizer ports.RoleAuthorizer) GetScheduleHistoryQueryHandler {
	return GetScheduleHistoryQueryHandler{db: db, authorizer: authorizer}
}

// Handle returns the schedules of the order ordered by creation time. An order without
// schedules yields an empty slice. Only the order's parties may ask.
func (h GetScheduleHistoryQueryHandler) Handle(ctx context.Context, query GetScheduleHistoryQuery) ([]ScheduleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := authorizeView(ctx, h.db, h.authorizer, query.OrderID(), query.ActorID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectSchedules+`
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSchedules(rows)
}
