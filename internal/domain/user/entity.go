package user

import "time"

type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// ParseRole rejects values outside the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User entity. ManagerEmail is a lookup key referencing another user's
// email, not an ownership relation.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	ManagerEmail string
	Designation  string
	Department   string
	Role         Role

	JoinedOn  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
