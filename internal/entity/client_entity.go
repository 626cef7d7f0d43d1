package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a traveler managed by an agency. Belongs to exactly one agency;
// lookups by name are case-insensitive substring matches and may return
// zero, one or many rows.
type Client struct {
	Id             uuid.UUID
	AgencyId       uuid.UUID
	FullName       string
	Email          string
	Phone          string
	Interests      []string
	BudgetRange    string
	Notes          string
	PassportNumber string
	Nationality    string
	VipStatus      bool
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
