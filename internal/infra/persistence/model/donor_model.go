package model

import (
	"time"

	"gorm.io/gorm"
)

// DonorModel mirrors the 'donors' table. IDs are the identity provider's user IDs.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type DonorModel struct {
	ID        string   `gorm:"type:varchar(128);primaryKey"`
	Name      string   `gorm:"type:varchar(100)"`
	BloodType *string  `gorm:"type:varchar(16)"`
	Latitude  *float64 `gorm:"type:decimal(10,8)"`
	Longitude *float64 `gorm:"type:decimal(11,8)"`
	// Note: location GEOGRAPHY(POINT, 4326) column exists in database but is not mapped here.
	// A trigger keeps it in sync with Latitude/Longitude and clears it when either is NULL.
	// Use raw SQL queries with PostGIS functions (ST_DWithin) for radius lookups.
	FCMToken  *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DonorModel) TableName() string {
	return "donors"
}
