// Package authz decides which order roles may act on schedules, using a Casbin RBAC model.
package authz

import (
	"fmt"

	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/ports"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

const scheduleResource = "schedule"

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicy lets both parties of an order propose, confirm, reject and view schedules.
// Whether a party may respond to its own proposal is decided by the domain, not here.
func DefaultPolicy() [][]string {
	var rules [][]string
	for _, role := range []order.Role{order.RoleBuyer, order.RoleSeller} {
		for _, action := range []ports.ScheduleAction{
			ports.ActionPropose,
			ports.ActionConfirm,
			ports.ActionReject,
			ports.ActionView,
		} {
			rules = append(rules, []string{role.String(), scheduleResource, string(action)})
		}
	}
	return rules
}

var _ ports.RoleAuthorizer = (*RoleAuthorizer)(nil)

// RoleAuthorizer implements ports.RoleAuthorizer on top of a Casbin enforcer.
type RoleAuthorizer struct {
	enforcer *casbin.Enforcer
}

// NewRoleAuthorizer builds an authorizer from in-memory rules of the form {role, "schedule", action}.
func NewRoleAuthorizer(rules [][]string) (*RoleAuthorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize enforcer: %w", err)
	}
	if len(rules) > 0 {
		if _, err := enforcer.AddPolicies(rules); err != nil {
			return nil, fmt.Errorf("failed to load authorization rules: %w", err)
		}
	}

	return &RoleAuthorizer{enforcer: enforcer}, nil
}

// NewRoleAuthorizerFromFile builds an authorizer from a Casbin policy CSV,
// e.g. "p, seller, schedule, propose" per line.
func NewRoleAuthorizerFromFile(policyPath string) (*RoleAuthorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, fileadapter.NewAdapter(policyPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize enforcer from %s: %w", policyPath, err)
	}

	return &RoleAuthorizer{enforcer: enforcer}, nil
}

// Authorize reports whether the role may perform the action. RoleNone is never allowed.
func (a *RoleAuthorizer) Authorize(role order.Role, action ports.ScheduleAction) (bool, error) {
	if role == order.RoleNone {
		return false, nil
	}

	allowed, err := a.enforcer.Enforce(role.String(), scheduleResource, string(action))
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}
