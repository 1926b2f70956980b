package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityinfo/internal/models/request_models"
	"cityinfo/internal/services"
	"cityinfo/pkg/logger"
	"cityinfo/pkg/utils"
)

func TestCityService_ListCities(t *testing.T) {
	svc := services.NewCityService(newCityInfoRepo(t), 2, logger.Test(t))
	ctx := context.Background()

	t.Run("page size is capped", func(t *testing.T) {
		cities, meta, err := svc.ListCities(ctx, request_models.CityListQuery{PageNumber: 1, PageSize: 50})
		require.NoError(t, err)
		require.Len(t, cities, 2)
		assert.Equal(t, "Antwerp", cities[0].Name)
		assert.Equal(t, "New York City", cities[1].Name)
		assert.EqualValues(t, 3, meta.TotalItemCount)
		assert.Equal(t, 2, meta.TotalPageCount)
		assert.Equal(t, 2, meta.PageSize)
		assert.Equal(t, 1, meta.CurrentPage)
	})

	t.Run("second page", func(t *testing.T) {
		cities, meta, err := svc.ListCities(ctx, request_models.CityListQuery{PageNumber: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Paris", cities[0].Name)
		assert.Equal(t, 2, meta.CurrentPage)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		cities, meta, err := svc.ListCities(ctx, request_models.CityListQuery{PageNumber: 5, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, cities)
		assert.EqualValues(t, 3, meta.TotalItemCount)

		cities, _, err = svc.ListCities(ctx, request_models.CityListQuery{PageNumber: 922337203685477581, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, cities)
	})

	t.Run("search", func(t *testing.T) {
		cities, meta, err := svc.ListCities(ctx, request_models.CityListQuery{SearchQuery: "park", PageNumber: 1, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "New York City", cities[0].Name)
		assert.EqualValues(t, 1, meta.TotalItemCount)
	})

	t.Run("invalid paging", func(t *testing.T) {
		_, _, err := svc.ListCities(ctx, request_models.CityListQuery{PageNumber: 0, PageSize: 2})
		require.ErrorIs(t, err, utils.ErrInvalidPage)

		_, _, err = svc.ListCities(ctx, request_models.CityListQuery{PageNumber: 1, PageSize: 0})
		require.ErrorIs(t, err, utils.ErrInvalidPageSize)

		wide := services.NewCityService(newCityInfoRepo(t), 20, logger.Test(t))
		_, _, err = wide.ListCities(ctx, request_models.CityListQuery{PageNumber: 922337203685477581, PageSize: 20})
		require.ErrorIs(t, err, utils.ErrInvalidPage)
	})
}

func TestCityService_GetCity(t *testing.T) {
	repo := newCityInfoRepo(t)
	svc := services.NewCityService(repo, 20, logger.Test(t))
	ctx := context.Background()
	paris := cityID(t, repo, "Paris")

	city, err := svc.GetCity(ctx, paris)
	require.NoError(t, err)
	assert.Equal(t, paris, city.ID)
	assert.Equal(t, "Paris", city.Name)

	withPois, err := svc.GetCityWithPointsOfInterest(ctx, paris)
	require.NoError(t, err)
	assert.Equal(t, 2, withPois.NumberOfPointsOfInterest)
	require.Len(t, withPois.PointsOfInterest, 2)
	assert.Equal(t, "Eiffel Tower", withPois.PointsOfInterest[0].Name)

	_, err = svc.GetCity(ctx, 9999)
	require.ErrorIs(t, err, utils.ErrCityNotFound)

	_, err = svc.GetCityWithPointsOfInterest(ctx, 9999)
	require.ErrorIs(t, err, utils.ErrCityNotFound)
}
