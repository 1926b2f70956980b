package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cityinfo/internal/models/request_models"
	"cityinfo/internal/models/response_models"
	"cityinfo/internal/repositories"
	"cityinfo/pkg/utils"
)

type CityServiceInterface interface {
	ListCities(ctx context.Context, query request_models.CityListQuery) ([]response_models.CityWithoutPointsOfInterest, response_models.PaginationMetadata, error)
	GetCity(ctx context.Context, cityID int) (response_models.CityWithoutPointsOfInterest, error)
	GetCityWithPointsOfInterest(ctx context.Context, cityID int) (response_models.City, error)
}

type CityService struct {
	repo        repositories.CityInfoRepository
	maxPageSize int
	lggr        *zap.SugaredLogger
}

func NewCityService(repo repositories.CityInfoRepository, maxPageSize int, lggr *zap.SugaredLogger) CityServiceInterface {
	return &CityService{
		repo:        repo,
		maxPageSize: maxPageSize,
		lggr:        lggr.Named("cities"),
	}
}

func (s *CityService) ListCities(ctx context.Context, query request_models.CityListQuery) ([]response_models.CityWithoutPointsOfInterest, response_models.PaginationMetadata, error) {
	pageNumber, pageSize, err := utils.NormalizePaging(query.PageNumber, query.PageSize, s.maxPageSize)
	if err != nil {
		return nil, response_models.PaginationMetadata{}, err
	}

	cities, total, err := s.repo.ListCities(ctx, repositories.CityFilter{
		Name:        query.Name,
		SearchQuery: query.SearchQuery,
		PageNumber:  pageNumber,
		PageSize:    pageSize,
	})
	if err != nil {
		s.lggr.Errorw("Failed to list cities", "error", err)
		return nil, response_models.PaginationMetadata{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	result := make([]response_models.CityWithoutPointsOfInterest, 0, len(cities))
	for _, city := range cities {
		result = append(result, toCityWithoutPointsOfInterest(city))
	}

	return result, response_models.NewPaginationMetadata(total, pageSize, pageNumber), nil
}

func (s *CityService) GetCity(ctx context.Context, cityID int) (response_models.CityWithoutPointsOfInterest, error) {
	city, err := s.repo.GetCity(ctx, cityID, false)
	if err != nil {
		s.lggr.Errorw("Failed to get city", "city_id", cityID, "error", err)
		return response_models.CityWithoutPointsOfInterest{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if city == nil {
		return response_models.CityWithoutPointsOfInterest{}, utils.ErrCityNotFound
	}
	return toCityWithoutPointsOfInterest(*city), nil
}

func (s *CityService) GetCityWithPointsOfInterest(ctx context.Context, cityID int) (response_models.City, error) {
	city, err := s.repo.GetCity(ctx, cityID, true)
	if err != nil {
		s.lggr.Errorw("Failed to get city", "city_id", cityID, "error", err)
		return response_models.City{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if city == nil {
		return response_models.City{}, utils.ErrCityNotFound
	}
	return toCityResponse(*city), nil
}
