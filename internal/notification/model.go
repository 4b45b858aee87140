package notification

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type Notification struct {
	ID            uint
	RecipientRole string
	Message       string
	Read          bool
	OrderID       *string
	CreatedAt     time.Time
}
