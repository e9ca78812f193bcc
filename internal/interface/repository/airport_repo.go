package repository

import (
	"context"
	"errors"
	"time"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

var _ repository.AirportRepository = (*GormAirportRepository)(nil)

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) *GormAirportRepository {
	return &GormAirportRepository{db: db}
}

// AirportList GORM model for database mapping
type AirportList struct {
	ID          uint           `gorm:"primaryKey"`
	AirportCode string         `gorm:"column:airportcode;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityCode    string         `gorm:"column:citycode"`
	CityName    string         `gorm:"column:cityname"`
	TzName      string         `gorm:"column:tzname"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (AirportList) TableName() string {
	return "m_airport_list"
}

// GetByCode finds an airport by IATA code
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport AirportList
	result := r.db.WithContext(ctx).Unscoped().Where("airportcode = ?", code).First(&airport)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "airports.GetByCode", "unknown airport code")
		}
		return nil, result.Error
	}

	return &entity.Airport{
		ID:        airport.ID,
		Code:      airport.AirportCode,
		Name:      airport.AirportName,
		CityCode:  airport.CityCode,
		CityName:  airport.CityName,
		TzName:    airport.TzName,
		CreatedAt: airport.CreatedAt,
		UpdatedAt: airport.UpdatedAt,
		DeletedAt: airport.DeletedAt,
	}, nil
}
