package specification

import "gorm.io/gorm"

// NameContains matches clients by case-insensitive substring on full_name.
// May match zero, one or many rows; the caller decides the tie-break.
type NameContains struct {
	Name string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("full_name ILIKE ?", "%"+s.Name+"%")
}
