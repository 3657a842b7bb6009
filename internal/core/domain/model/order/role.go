package order

// Role is the side of an order an actor is on.
type Role int

const (
	// RoleNone is returned for actors that are not a party to the order.
	RoleNone Role = iota
	// RoleBuyer is the party receiving the produce.
	RoleBuyer
	// RoleSeller is the party shipping the produce.
	RoleSeller
)

// String returns the lower-case role name used by the authorization policy.
func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	case RoleNone:
		return "none"
	default:
		return "none"
	}
}
