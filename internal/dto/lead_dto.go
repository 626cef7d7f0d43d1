package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLeadRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	BudgetRange string `json:"budget_range"`
	TravelDate  string `json:"travel_date"`
	Notes       string `json:"notes"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=new contacted qualified proposal won lost"`
}

type UpdateLeadRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	BudgetRange string `json:"budget_range"`
	TravelDate  string `json:"travel_date"`
	Notes       string `json:"notes"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=new contacted qualified proposal won lost"`
}

type LeadResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	Source      string     `json:"source"`
	Destination string     `json:"destination"`
	BudgetRange string     `json:"budget_range"`
	TravelDate  string     `json:"travel_date"`
	Notes       string     `json:"notes"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  uuid.UUID  `json:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type LeadStatsResponse struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByPriority     map[string]int64 `json:"by_priority"`
	ConversionRate float64          `json:"conversion_rate"`
}

type QualifyLeadResponse struct {
	LeadId   uuid.UUID `json:"lead_id"`
	Analysis string    `json:"analysis"`
}

type FollowUpResponse struct {
	LeadId      uuid.UUID `json:"lead_id"`
	Suggestions string    `json:"suggestions"`
}

type LeadScoreResponse struct {
	LeadId uuid.UUID `json:"lead_id"`
	Score  int       `json:"score"`
}

type ConvertLeadResponse struct {
	LeadId   uuid.UUID `json:"lead_id"`
	ClientId uuid.UUID `json:"client_id"`
}
