package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Company     string    `gorm:"type:varchar(255)"`
	Source      string    `gorm:"type:varchar(100);not null;default:'manual'"`
	Destination string    `gorm:"type:varchar(255)"`
	BudgetRange string    `gorm:"type:varchar(100)"`
	TravelDate  string    `gorm:"type:varchar(100)"`
	Notes       string    `gorm:"type:text"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'medium';index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'new';index"`
	AssignedTo  uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
