package model

import (
	"time"

	"github.com/google/uuid"
)

type Agency struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	ContactEmail string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Address      string    `gorm:"type:text"`
	LogoUrl      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Agency) TableName() string {
	return "agencies"
}
