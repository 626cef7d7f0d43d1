package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Itinerary struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	ClientId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Destination        string         `gorm:"type:varchar(255);not null"`
	Duration           int            `gorm:"not null;default:1"`
	Budget             string         `gorm:"type:varchar(100)"`
	AiGeneratedContent string         `gorm:"type:text"`
	AiGeneratedJson    datatypes.JSON `gorm:"type:jsonb"`
	Status             string         `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedBy          uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}
