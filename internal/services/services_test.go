package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"cityinfo/internal/repositories"
	"cityinfo/internal/testutil"
)

type sentMail struct {
	Subject string
	Message string
}

type fakeMailService struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailService) Send(ctx context.Context, subject, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{Subject: subject, Message: message})
	return f.err
}

func (f *fakeMailService) Sent() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}

func newCityInfoRepo(t *testing.T) repositories.CityInfoRepository {
	t.Helper()
	return repositories.NewCityInfoRepository(testutil.NewTestDB(t))
}

func cityID(t *testing.T, repo repositories.CityInfoRepository, name string) int {
	t.Helper()
	cities, _, err := repo.ListCities(context.Background(), repositories.CityFilter{Name: name, PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, cities, 1)
	return cities[0].ID
}

func firstPoiID(t *testing.T, repo repositories.CityInfoRepository, cityID int) int {
	t.Helper()
	pois, err := repo.GetPointsOfInterestForCity(context.Background(), cityID)
	require.NoError(t, err)
	require.NotEmpty(t, pois)
	return pois[0].ID
}

func strPtr(s string) *string { return &s }
