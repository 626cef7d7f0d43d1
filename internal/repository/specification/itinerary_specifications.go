package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByClientID struct {
	ClientID uuid.UUID
}

func (s ByClientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("client_id = ?", s.ClientID)
}
