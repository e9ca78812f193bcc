package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport is reference information for an airport code, including the
// IANA timezone its local schedule times are expressed in.
type Airport struct {
	ID        uint
	Code      string
	Name      string
	CityCode  string
	CityName  string
	TzName    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
