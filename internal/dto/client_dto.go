package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	FullName       string   `json:"full_name" validate:"required"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone"`
	Interests      []string `json:"interests"`
	BudgetRange    string   `json:"budget_range"`
	Notes          string   `json:"notes"`
	PassportNumber string   `json:"passport_number"`
	Nationality    string   `json:"nationality"`
	VipStatus      bool     `json:"vip_status"`
}

type UpdateClientRequest struct {
	Id             uuid.UUID
	FullName       string   `json:"full_name" validate:"required"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Phone          string   `json:"phone"`
	Interests      []string `json:"interests"`
	BudgetRange    string   `json:"budget_range"`
	Notes          string   `json:"notes"`
	PassportNumber string   `json:"passport_number"`
	Nationality    string   `json:"nationality"`
	VipStatus      bool     `json:"vip_status"`
}

type ClientResponse struct {
	Id             uuid.UUID  `json:"id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Interests      []string   `json:"interests"`
	BudgetRange    string     `json:"budget_range"`
	Notes          string     `json:"notes"`
	PassportNumber string     `json:"passport_number"`
	Nationality    string     `json:"nationality"`
	VipStatus      bool       `json:"vip_status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type ClientStatsResponse struct {
	Total        int64 `json:"total"`
	Vip          int64 `json:"vip"`
	NewThisMonth int64 `json:"new_this_month"`
}
