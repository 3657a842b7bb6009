package ports

import "scheduling/internal/core/domain/model/order"

// ScheduleAction is an operation a party may be permitted to perform on schedules.
type ScheduleAction string

const (
	ActionPropose ScheduleAction = "propose"
	ActionConfirm ScheduleAction = "confirm"
	ActionReject  ScheduleAction = "reject"
	ActionView    ScheduleAction = "view"
)

// RoleAuthorizer decides whether a role may perform an action on schedules.
type RoleAuthorizer interface {
	Authorize(role order.Role, action ScheduleAction) (bool, error)
}
