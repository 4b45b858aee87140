package user

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type User struct {
	ID           uint
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}
