package auth

import "fmt"

// Role is a principal's role in the system. Roles form a total order:
// guest < staff < receptionist < admin < superadmin.
type Role string

const (
	RoleGuest        Role = "guest"
	RoleStaff        Role = "staff"
	RoleReceptionist Role = "receptionist"
	RoleAdmin        Role = "admin"
	RoleSuperAdmin   Role = "superadmin"
)

var roleRanks = map[Role]int{
	RoleGuest:        0,
	RoleStaff:        1,
	RoleReceptionist: 2,
	RoleAdmin:        3,
	RoleSuperAdmin:   4,
}

// ParseRole validates a role name and returns the typed Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRanks[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Rank returns the position of the role in the hierarchy.
// Unknown roles rank below guest.
func (r Role) Rank() int {
	if rank, ok := roleRanks[r]; ok {
		return rank
	}
	return -1
}

// AtLeast reports whether the role ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.Rank() >= 0 && r.Rank() >= min.Rank()
}

// IsStaff reports whether the role belongs to hotel personnel (staff or above).
func (r Role) IsStaff() bool {
	return r.AtLeast(RoleStaff)
}

func (r Role) String() string {
	return string(r)
}
