package model

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItineraryId *uuid.UUID `gorm:"type:uuid"`
	Amount      float64    `gorm:"type:numeric(12,2);not null"`
	Currency    string     `gorm:"type:varchar(10);not null;default:'USD'"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	PaymentLink string     `gorm:"type:text"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}
