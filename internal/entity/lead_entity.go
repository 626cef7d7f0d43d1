package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusProposal  LeadStatus = "proposal"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityMedium LeadPriority = "medium"
	LeadPriorityHigh   LeadPriority = "high"
)

type Lead struct {
	Id          uuid.UUID
	AgencyId    uuid.UUID
	Name        string
	Email       string
	Phone       string
	Company     string
	Source      string
	Destination string
	BudgetRange string
	TravelDate  string
	Notes       string
	Priority    LeadPriority
	Status      LeadStatus
	AssignedTo  uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
