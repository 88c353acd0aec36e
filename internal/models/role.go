package models

// Role is the closed set of account roles, stored and serialized as
// uppercase strings.
type Role string

const (
	RoleSuperAdmin      Role = "SUPER_ADMIN"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleUser            Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleServiceProvider, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
