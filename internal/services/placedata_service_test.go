package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
	"github.com/MiqayaMahmood/foodeez-0909/internal/services"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cache"
)

// MockPlacesClient is a mock implementation of services.PlacesClient
type MockPlacesClient struct {
	mock.Mock
}

func (m *MockPlacesClient) FetchPlaceDetails(ctx context.Context, placeID string) (*models.PlaceData, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlaceData), args.Error(1)
}

func freshPlaceData() *models.PlaceData {
	return &models.PlaceData{
		Name:         "Pizzeria Molino",
		Rating:       4.5,
		TotalReviews: 120,
		Reviews: []models.GoogleReview{
			{AuthorName: "Jonas", Rating: 5, Text: "Great pizza", RelativeTimeDescription: "a week ago"},
			{AuthorName: "Lena", Rating: 4, Text: "Nice staff", RelativeTimeDescription: "a month ago"},
		},
		OpeningHours: []models.OpeningHourDay{
			{Day: "Monday", Hours: "09:00 - 18:00"},
			{Day: "Tuesday", Hours: "09:00 - 12:00, 14:00 - 18:00"},
		},
		Photos: []models.GooglePhoto{
			{PhotoURL: "https://example.com/p1.jpg", Width: 800, Height: 600},
		},
		IsOpenNow: true,
	}
}

func setupPlaceDataService(t *testing.T) (*services.PlaceDataService, *repositories.MockBusinessRepository, *repositories.MockPlaceCacheRepository, *MockPlacesClient) {
	t.Helper()

	businessRepo := repositories.NewMockBusinessRepository()
	cacheRepo := repositories.NewMockPlaceCacheRepository()
	placesClient := new(MockPlacesClient)
	service := services.NewPlaceDataService(businessRepo, cacheRepo, placesClient, cache.NewMemoryCache())

	require.NoError(t, businessRepo.Create(&models.Business{
		ID:           42,
		BusinessName: "Pizzeria Molino",
		PlaceID:      "abc123",
	}))

	return service, businessRepo, cacheRepo, placesClient
}

func TestGetPlaceData_CacheHitSkipsExternalClient(t *testing.T) {
	service, _, cacheRepo, placesClient := setupPlaceDataService(t)

	now := time.Now()
	require.NoError(t, cacheRepo.SaveReviews([]models.BusinessGoogleReview{
		{BusinessID: 42, PlaceID: "abc123", Author: "Jonas", Rating: "4.5", Review: "Great pizza", CreationDatetime: now},
	}))
	require.NoError(t, cacheRepo.SaveOpeningHours([]models.BusinessOpeningHours{
		{BusinessID: 42, PlaceID: "abc123", Day: "Monday", Open1: "09:00", Close1: "18:00", CreationDatetime: now},
	}))
	require.NoError(t, cacheRepo.SaveImages([]models.BusinessGoogleImage{
		{BusinessID: 42, PlaceID: "abc123", ImageURL: "https://example.com/p1.jpg", Width: "800", Height: "600", CreationDatetime: now},
	}))

	data, err := service.GetPlaceData(context.Background(), 42, false)

	require.NoError(t, err)
	assert.True(t, data.Cached)
	assert.Len(t, data.Reviews, 1)
	assert.Equal(t, 4.5, data.Reviews[0].Rating)
	assert.Equal(t, "09:00 - 18:00", data.OpeningHours[0].Hours)
	assert.Equal(t, 800, data.Photos[0].Width)
	placesClient.AssertNotCalled(t, "FetchPlaceDetails")
}

func TestGetPlaceData_PartialCacheIsAMiss(t *testing.T) {
	service, _, cacheRepo, placesClient := setupPlaceDataService(t)

	// Reviews only; hours and images missing
	require.NoError(t, cacheRepo.SaveReviews([]models.BusinessGoogleReview{
		{BusinessID: 42, PlaceID: "abc123", Author: "Jonas", Rating: "4.5"},
	}))

	placesClient.On("FetchPlaceDetails", mock.Anything, "abc123").Return(freshPlaceData(), nil).Once()

	data, err := service.GetPlaceData(context.Background(), 42, false)

	require.NoError(t, err)
	assert.False(t, data.Cached)
	placesClient.AssertNumberOfCalls(t, "FetchPlaceDetails", 1)
}

func TestGetPlaceData_MissFetchesOnceAndWarmsCache(t *testing.T) {
	service, _, cacheRepo, placesClient := setupPlaceDataService(t)

	placesClient.On("FetchPlaceDetails", mock.Anything, "abc123").Return(freshPlaceData(), nil).Once()

	data, err := service.GetPlaceData(context.Background(), 42, false)

	require.NoError(t, err)
	assert.False(t, data.Cached)
	assert.True(t, data.IsOpenNow) // trusted from the live payload, not recomputed
	placesClient.AssertNumberOfCalls(t, "FetchPlaceDetails", 1)

	reviews, hours, images, err := cacheRepo.CountsForKey(42, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(2), reviews)
	assert.Equal(t, int64(2), hours)
	assert.Equal(t, int64(1), images)

	// The warmed cache now serves subsequent reads without the external client
	cached, err := service.GetPlaceData(context.Background(), 42, false)
	require.NoError(t, err)
	assert.True(t, cached.Cached)
	placesClient.AssertNumberOfCalls(t, "FetchPlaceDetails", 1)
}

func TestGetPlaceData_CacheWriteDuplicateGuard(t *testing.T) {
	service, _, cacheRepo, placesClient := setupPlaceDataService(t)

	placesClient.On("FetchPlaceDetails", mock.Anything, "abc123").Return(freshPlaceData(), nil)

	_, err := service.GetPlaceData(context.Background(), 42, false)
	require.NoError(t, err)
	reviewsBefore, hoursBefore, imagesBefore, err := cacheRepo.CountsForKey(42, "abc123")
	require.NoError(t, err)

	// A forced refresh fetches again but must not duplicate cache rows
	_, err = service.GetPlaceData(context.Background(), 42, true)
	require.NoError(t, err)

	reviewsAfter, hoursAfter, imagesAfter, err := cacheRepo.CountsForKey(42, "abc123")
	require.NoError(t, err)
	assert.Equal(t, reviewsBefore, reviewsAfter)
	assert.Equal(t, hoursBefore, hoursAfter)
	assert.Equal(t, imagesBefore, imagesAfter)
}

func TestGetPlaceData_BusinessNotFound(t *testing.T) {
	service, _, _, placesClient := setupPlaceDataService(t)

	_, err := service.GetPlaceData(context.Background(), 99, false)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	placesClient.AssertNotCalled(t, "FetchPlaceDetails")
}

func TestGetPlaceData_BusinessWithoutPlaceID(t *testing.T) {
	service, businessRepo, _, placesClient := setupPlaceDataService(t)

	require.NoError(t, businessRepo.Create(&models.Business{ID: 43, BusinessName: "No Maps Entry"}))

	_, err := service.GetPlaceData(context.Background(), 43, false)

	assert.True(t, errors.Is(err, services.ErrNotFound))
	placesClient.AssertNotCalled(t, "FetchPlaceDetails")
}

func TestGetPlaceData_UpstreamFailure(t *testing.T) {
	service, _, _, placesClient := setupPlaceDataService(t)

	placesClient.On("FetchPlaceDetails", mock.Anything, "abc123").Return(nil, fmt.Errorf("status 500")).Once()

	_, err := service.GetPlaceData(context.Background(), 42, false)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrUpstream))
	placesClient.AssertExpectations(t)
}

func TestHasCachedData(t *testing.T) {
	service, _, _, placesClient := setupPlaceDataService(t)

	// Empty cache
	hasData, err := service.HasCachedData(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, hasData)

	// Warm the cache through a live fetch; the existence cache is refreshed on write
	placesClient.On("FetchPlaceDetails", mock.Anything, "abc123").Return(freshPlaceData(), nil).Once()
	_, err = service.GetPlaceData(context.Background(), 42, false)
	require.NoError(t, err)

	hasData, err = service.HasCachedData(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, hasData)
}

func TestPurgeCachedData(t *testing.T) {
	service, _, cacheRepo, placesClient := setupPlaceDataService(t)

	placesClient.On("FetchPlaceDetails", mock.Anything, "abc123").Return(freshPlaceData(), nil).Once()
	_, err := service.GetPlaceData(context.Background(), 42, false)
	require.NoError(t, err)

	hasData, err := service.HasCachedData(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, hasData)

	require.NoError(t, service.PurgeCachedData(context.Background(), 42))

	reviews, hours, images, err := cacheRepo.CountsForKey(42, "abc123")
	require.NoError(t, err)
	assert.Zero(t, reviews)
	assert.Zero(t, hours)
	assert.Zero(t, images)

	// The purge also invalidates the memoized existence answer
	hasData, err = service.HasCachedData(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, hasData)
}

func TestPurgeCachedData_UnknownBusiness(t *testing.T) {
	service, _, _, _ := setupPlaceDataService(t)

	err := service.PurgeCachedData(context.Background(), 99)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestHasCachedData_UnknownBusiness(t *testing.T) {
	service, _, _, _ := setupPlaceDataService(t)

	_, err := service.HasCachedData(context.Background(), 99)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
