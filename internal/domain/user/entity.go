package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleChef     Role = "CHEF" // site manager: can ingest sheets and review advances
	RoleEmployee Role = "EMPLOYEE"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
