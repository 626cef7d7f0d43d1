package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Client struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	FullName       string         `gorm:"type:varchar(255);not null;index"`
	Email          string         `gorm:"type:varchar(255)"`
	Phone          string         `gorm:"type:varchar(50)"`
	Interests      datatypes.JSON `gorm:"type:jsonb"`
	BudgetRange    string         `gorm:"type:varchar(100)"`
	Notes          string         `gorm:"type:text"`
	PassportNumber string         `gorm:"type:varchar(100)"`
	Nationality    string         `gorm:"type:varchar(100)"`
	VipStatus      bool           `gorm:"not null;default:false"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}
