package models

type Role string

const (
	AdminRole      Role = "admin"
	TechnicianRole Role = "technician"
	MechanicRole   Role = "mechanic"
	SupervisorRole Role = "supervisor"
)

func IsValidRole(role Role) bool {
	switch role {
	case AdminRole, TechnicianRole, MechanicRole, SupervisorRole:
		return true
	}
	return false
}

// AuthUser is the caller identity extracted from a verified access token.
type AuthUser struct {
	ID       string
	Username string
	Role     Role
}

func (u AuthUser) IsAdmin() bool {
	return u.Role == AdminRole
}
