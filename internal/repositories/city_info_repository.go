package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"cityinfo/internal/models/db_models"
	"cityinfo/pkg/utils"
)

// CityFilter narrows and pages the city list. Blank Name and SearchQuery are ignored.
type CityFilter struct {
	Name        string
	SearchQuery string
	PageNumber  int
	PageSize    int
}

type CityInfoRepository interface {
	ListCities(ctx context.Context, filter CityFilter) ([]db_models.City, int64, error)
	GetCity(ctx context.Context, cityID int, includePointsOfInterest bool) (*db_models.City, error)
	CityExists(ctx context.Context, cityID int) (bool, error)
	CityNameMatchesCityID(ctx context.Context, cityName string, cityID int) (bool, error)

	GetPointsOfInterestForCity(ctx context.Context, cityID int) ([]db_models.PointOfInterest, error)
	GetPointOfInterestForCity(ctx context.Context, cityID, pointOfInterestID int) (*db_models.PointOfInterest, error)
	AddPointOfInterestForCity(ctx context.Context, cityID int, poi *db_models.PointOfInterest) error
	UpdatePointOfInterest(ctx context.Context, poi *db_models.PointOfInterest) error
	DeletePointOfInterest(ctx context.Context, poi *db_models.PointOfInterest) error
}

type cityInfoRepository struct {
	db *gorm.DB
}

func NewCityInfoRepository(db *gorm.DB) CityInfoRepository {
	return &cityInfoRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func cityFilterScope(filter CityFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name := strings.TrimSpace(filter.Name); name != "" {
			db = db.Where("name = ?", name)
		}
		if q := strings.TrimSpace(filter.SearchQuery); q != "" {
			pattern := "%" + strings.ToLower(likeEscaper.Replace(q)) + "%"
			db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		return db
	}
}

// ListCities returns one page of cities ordered by name and the number of
// cities matching the filter across all pages.
func (r *cityInfoRepository) ListCities(ctx context.Context, filter CityFilter) ([]db_models.City, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.City{}).
		Scopes(cityFilterScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count cities: %w", err)
	}

	var cities []db_models.City
	err = r.db.WithContext(ctx).
		Scopes(cityFilterScope(filter), func(db *gorm.DB) *gorm.DB {
			return db.Offset(utils.Offset(filter.PageNumber, filter.PageSize)).Limit(filter.PageSize)
		}).
		Order("name").
		Order("id").
		Find(&cities).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list cities: %w", err)
	}
	return cities, total, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers return nil and no error when no row matches.
// ────────────────────────────────────────────────────────────────

func (r *cityInfoRepository) GetCity(ctx context.Context, cityID int, includePointsOfInterest bool) (*db_models.City, error) {
	var city db_models.City
	q := r.db.WithContext(ctx)
	if includePointsOfInterest {
		q = q.Preload("PointsOfInterest", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
	}

	err := q.First(&city, "id = ?", cityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityInfoRepository) CityExists(ctx context.Context, cityID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.City{}).
		Where("id = ?", cityID).
		Count(&count).Error
	return count > 0, err
}

func (r *cityInfoRepository) CityNameMatchesCityID(ctx context.Context, cityName string, cityID int) (bool, error) {
	if cityName == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.City{}).
		Where("id = ? AND name = ?", cityID, cityName).
		Count(&count).Error
	return count > 0, err
}

func (r *cityInfoRepository) GetPointsOfInterestForCity(ctx context.Context, cityID int) ([]db_models.PointOfInterest, error) {
	var pois []db_models.PointOfInterest
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("id").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *cityInfoRepository) GetPointOfInterestForCity(ctx context.Context, cityID, pointOfInterestID int) (*db_models.PointOfInterest, error) {
	var poi db_models.PointOfInterest
	err := r.db.WithContext(ctx).
		Where("city_id = ? AND id = ?", cityID, pointOfInterestID).
		First(&poi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poi, nil
}

func (r *cityInfoRepository) AddPointOfInterestForCity(ctx context.Context, cityID int, poi *db_models.PointOfInterest) error {
	poi.CityID = cityID
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		return fmt.Errorf("create point of interest: %w", err)
	}
	return nil
}

// UpdatePointOfInterest writes the updatable fields of an existing point of
// interest. It never inserts: a row deleted since it was read yields
// utils.ErrPointOfInterestNotFound.
func (r *cityInfoRepository) UpdatePointOfInterest(ctx context.Context, poi *db_models.PointOfInterest) error {
	poi.UpdatedAt = time.Now().Unix()
	result := r.db.WithContext(ctx).
		Model(&db_models.PointOfInterest{}).
		Where("id = ? AND city_id = ?", poi.ID, poi.CityID).
		Updates(map[string]interface{}{
			"name":        poi.Name,
			"description": poi.Description,
			"updated_at":  poi.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update point of interest: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return utils.ErrPointOfInterestNotFound
	}

	return nil
}

func (r *cityInfoRepository) DeletePointOfInterest(ctx context.Context, poi *db_models.PointOfInterest) error {
	err := r.db.WithContext(ctx).Delete(&db_models.PointOfInterest{}, "id = ? AND city_id = ?", poi.ID, poi.CityID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
