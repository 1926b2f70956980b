package infra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityinfo/internal/infra"
	"cityinfo/internal/models/db_models"
	"cityinfo/internal/testutil"
)

func TestMigrate_SeedsCities(t *testing.T) {
	db := testutil.NewTestDB(t)

	var cities []db_models.City
	require.NoError(t, db.Preload("PointsOfInterest").Order("name").Find(&cities).Error)
	require.Len(t, cities, 3)

	assert.Equal(t, "Antwerp", cities[0].Name)
	assert.Equal(t, "New York City", cities[1].Name)
	assert.Equal(t, "Paris", cities[2].Name)
	for _, c := range cities {
		assert.Len(t, c.PointsOfInterest, 2, c.Name)
	}

	require.NotNil(t, cities[1].Description)
	assert.Equal(t, "updated ---- The one with that big park.", *cities[1].Description)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, infra.Migrate(db, infra.DriverSQLite))

	var count int64
	require.NoError(t, db.Model(&db_models.City{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestMigrate_ForeignKeyEnforced(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := db.Create(&db_models.PointOfInterest{Name: "Orphan", CityID: 999}).Error
	assert.Error(t, err)
}
