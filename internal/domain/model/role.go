package model

// Role is the caller's authorization level, asserted via the x-user-role
// request header. Roles are totally ordered: public < user < owner < admin.
type Role string

const (
	RolePublic Role = "public"
	RoleUser   Role = "user"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

var roleRanks = map[Role]int{
	RolePublic: 0,
	RoleUser:   1,
	RoleOwner:  2,
	RoleAdmin:  3,
}

// ParseRole maps a header value to a Role. Unknown or empty values fall back
// to RolePublic, which denies every gated operation and matches no
// privileged projection branch.
func ParseRole(s string) Role {
	r := Role(s)
	if _, ok := roleRanks[r]; !ok {
		return RolePublic
	}
	return r
}

// Rank returns the role's position in the hierarchy.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether r is ranked at or above required.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}
