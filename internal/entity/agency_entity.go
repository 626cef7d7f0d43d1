package entity

import (
	"time"

	"github.com/google/uuid"
)

// Agency is the tenant: every other entity hangs off an agency id.
type Agency struct {
	Id           uuid.UUID
	Name         string
	ContactEmail string
	Phone        string
	Address      string
	LogoUrl      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
