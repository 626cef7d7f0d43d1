package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	AgencyName string `json:"agency_name" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

type RegisterResponse struct {
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
	Agency AgencyBrief  `json:"agency"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
	Agency AgencyBrief  `json:"agency"`
}

type UserResponse struct {
	Id       uuid.UUID `json:"id"`
	AgencyId uuid.UUID `json:"agency_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
}

type AgencyBrief struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
