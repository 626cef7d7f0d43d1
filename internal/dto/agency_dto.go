package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateAgencyRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	LogoUrl      string `json:"logo_url"`
}

type AgencyResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	ContactEmail string     `json:"contact_email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	LogoUrl      string     `json:"logo_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type AgencyStatsResponse struct {
	Clients     int64 `json:"clients"`
	Leads       int64 `json:"leads"`
	Itineraries int64 `json:"itineraries"`
	Invoices    int64 `json:"invoices"`
	TeamMembers int64 `json:"team_members"`
}

type TeamMemberResponse struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
}

type InviteTeamMemberRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin agent"`
}
