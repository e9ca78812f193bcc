package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airline is a reference-table record used to turn carrier codes into
// display names in recommendation reasons and advisories.
type Airline struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
