package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/cache"
	"github.com/MiqayaMahmood/foodeez-0909/pkg/googleplaces"
)

// existenceTTL bounds how long a "business has complete cached place data"
// answer is trusted before hitting the database again.
const existenceTTL = 10 * time.Minute

// PlacesClient fetches place details from the external mapping API.
type PlacesClient interface {
	FetchPlaceDetails(ctx context.Context, placeID string) (*models.PlaceData, error)
}

// PlaceDataService mediates between the place-data cache tables and the
// external Places API: it prefers the cache, falls back to the API, and
// opportunistically warms the cache on a miss.
type PlaceDataService struct {
	businessRepo repositories.BusinessRepository
	cacheRepo    repositories.PlaceCacheRepository
	places       PlacesClient
	existence    cache.ExistenceCache
}

// NewPlaceDataService creates a new PlaceDataService.
func NewPlaceDataService(
	businessRepo repositories.BusinessRepository,
	cacheRepo repositories.PlaceCacheRepository,
	places PlacesClient,
	existence cache.ExistenceCache,
) *PlaceDataService {
	return &PlaceDataService{
		businessRepo: businessRepo,
		cacheRepo:    cacheRepo,
		places:       places,
		existence:    existence,
	}
}

// GetPlaceData returns the unified place data for a business. Unless
// forceRefresh is set, a complete cache is returned without contacting the
// external API. On a miss the API result is returned and persisted best
// effort: a cache-write failure never fails the read.
func (s *PlaceDataService) GetPlaceData(ctx context.Context, businessID uint, forceRefresh bool) (*models.PlaceData, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: business %d", ErrNotFound, businessID)
	}
	if business.PlaceID == "" {
		return nil, fmt.Errorf("%w: business %d has no place ID", ErrNotFound, businessID)
	}
	placeID := business.PlaceID

	if !forceRefresh {
		cached, err := s.readCache(ctx, businessID, placeID)
		if err != nil {
			// A broken cache read degrades to a live fetch.
			log.Printf("Cache read failed for business %d, falling back to API: %v", businessID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	fresh, err := s.places.FetchPlaceDetails(ctx, placeID)
	if err != nil {
		if errors.Is(err, googleplaces.ErrAPIKeyMissing) {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.writeCache(ctx, businessID, placeID, fresh)

	fresh.Cached = false
	return fresh, nil
}

// HasCachedData reports whether a business has a complete place-data cache
// (all three row sets non-empty). Answers are memoized in the existence cache.
func (s *PlaceDataService) HasCachedData(ctx context.Context, businessID uint) (bool, error) {
	key := existenceKey(businessID)
	if value, found := s.existence.Get(ctx, key); found {
		return value, nil
	}

	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return false, fmt.Errorf("%w: business %d", ErrNotFound, businessID)
	}
	if business.PlaceID == "" {
		return false, nil
	}

	reviews, hours, images, err := s.cacheRepo.CountsForKey(businessID, business.PlaceID)
	if err != nil {
		return false, fmt.Errorf("failed to check cached data for business %d: %w", businessID, err)
	}
	complete := reviews > 0 && hours > 0 && images > 0
	s.existence.Set(ctx, key, complete, existenceTTL)
	return complete, nil
}

// PurgeCachedData drops all cached place data for a business so the next read
// repopulates from the external API. Administrative operation.
func (s *PlaceDataService) PurgeCachedData(ctx context.Context, businessID uint) error {
	if _, err := s.businessRepo.GetByID(businessID); err != nil {
		return fmt.Errorf("%w: business %d", ErrNotFound, businessID)
	}
	if err := s.cacheRepo.PurgeForBusiness(businessID); err != nil {
		return fmt.Errorf("failed to purge cached data for business %d: %w", businessID, err)
	}
	s.existence.Delete(ctx, existenceKey(businessID))
	return nil
}

// readCache fetches the three row sets concurrently and maps them into the
// unified shape. An incomplete cache (any row set empty) is a miss: the
// return is (nil, nil), never a partial object.
func (s *PlaceDataService) readCache(ctx context.Context, businessID uint, placeID string) (*models.PlaceData, error) {
	var (
		reviewRows []models.BusinessGoogleReview
		hourRows   []models.BusinessOpeningHours
		imageRows  []models.BusinessGoogleImage
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviewRows, err = s.cacheRepo.GetReviews(businessID, placeID)
		return err
	})
	g.Go(func() error {
		var err error
		hourRows, err = s.cacheRepo.GetOpeningHours(businessID, placeID)
		return err
	})
	g.Go(func() error {
		var err error
		imageRows, err = s.cacheRepo.GetImages(businessID, placeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(reviewRows) == 0 || len(hourRows) == 0 || len(imageRows) == 0 {
		return nil, nil
	}

	reviews := make([]models.GoogleReview, 0, len(reviewRows))
	lastUpdated := time.Time{}
	for _, row := range reviewRows {
		rating, err := strconv.ParseFloat(row.Rating, 64)
		if err != nil {
			rating = 0
		}
		reviews = append(reviews, models.GoogleReview{
			AuthorName:              row.Author,
			Rating:                  rating,
			Text:                    row.Review,
			RelativeTimeDescription: row.RelativeTime,
			ProfilePhotoURL:         row.ProfilePhotoURL,
		})
		if row.CreationDatetime.After(lastUpdated) {
			lastUpdated = row.CreationDatetime
		}
	}

	openingHours := make([]models.OpeningHourDay, 0, len(hourRows))
	for _, row := range hourRows {
		hours := fmt.Sprintf("%s - %s", row.Open1, row.Close1)
		if row.Open2 != "" {
			hours += fmt.Sprintf(", %s - %s", row.Open2, row.Close2)
		}
		openingHours = append(openingHours, models.OpeningHourDay{
			Day:   row.Day,
			Hours: hours,
		})
		if row.CreationDatetime.After(lastUpdated) {
			lastUpdated = row.CreationDatetime
		}
	}

	photos := make([]models.GooglePhoto, 0, len(imageRows))
	for _, row := range imageRows {
		width, err := strconv.Atoi(row.Width)
		if err != nil {
			width = 0
		}
		height, err := strconv.Atoi(row.Height)
		if err != nil {
			height = 0
		}
		photos = append(photos, models.GooglePhoto{
			PhotoURL: row.ImageURL,
			Width:    width,
			Height:   height,
		})
		if row.CreationDatetime.After(lastUpdated) {
			lastUpdated = row.CreationDatetime
		}
	}

	return &models.PlaceData{
		Name:         "", // not cached; pages take the name from the business record
		Rating:       0,
		TotalReviews: len(reviews),
		Reviews:      reviews,
		OpeningHours: openingHours,
		Photos:       photos,
		IsOpenNow:    IsOpenAt(openingHours, time.Now()),
		Cached:       true,
		LastUpdated:  lastUpdated,
	}, nil
}

// writeCache persists a fresh API result into the three cache tables. The
// write is skipped entirely if any row already exists for the key; this is a
// duplicate guard against concurrent or repeated population, not an upsert.
// All failures are logged and swallowed.
func (s *PlaceDataService) writeCache(ctx context.Context, businessID uint, placeID string, data *models.PlaceData) {
	reviews, hours, images, err := s.cacheRepo.CountsForKey(businessID, placeID)
	if err != nil {
		log.Printf("Cache-write pre-check failed for business %d: %v", businessID, err)
		return
	}
	if reviews > 0 || hours > 0 || images > 0 {
		log.Printf("Cache rows already exist for business %d, skipping write", businessID)
		return
	}

	now := time.Now()

	reviewRows := make([]models.BusinessGoogleReview, 0, len(data.Reviews))
	for _, review := range data.Reviews {
		reviewRows = append(reviewRows, models.BusinessGoogleReview{
			BusinessID:       businessID,
			PlaceID:          placeID,
			Author:           review.AuthorName,
			Rating:           strconv.FormatFloat(review.Rating, 'f', -1, 64),
			Review:           review.Text,
			RelativeTime:     review.RelativeTimeDescription,
			ProfilePhotoURL:  review.ProfilePhotoURL,
			CreationDatetime: now,
		})
	}

	hourRows := make([]models.BusinessOpeningHours, 0, len(data.OpeningHours))
	for _, entry := range data.OpeningHours {
		open1, close1, open2, close2 := splitHourRanges(entry.Hours)
		hourRows = append(hourRows, models.BusinessOpeningHours{
			BusinessID:       businessID,
			PlaceID:          placeID,
			Day:              entry.Day,
			Open1:            open1,
			Close1:           close1,
			Open2:            open2,
			Close2:           close2,
			Remarks:          entry.Hours,
			CreationDatetime: now,
		})
	}

	imageRows := make([]models.BusinessGoogleImage, 0, len(data.Photos))
	for _, photo := range data.Photos {
		imageRows = append(imageRows, models.BusinessGoogleImage{
			BusinessID:       businessID,
			PlaceID:          placeID,
			ImageURL:         photo.PhotoURL,
			Width:            strconv.Itoa(photo.Width),
			Height:           strconv.Itoa(photo.Height),
			CreationDatetime: now,
		})
	}

	if err := s.cacheRepo.SaveReviews(reviewRows); err != nil {
		log.Printf("Failed to save cached reviews for business %d: %v", businessID, err)
	}
	if err := s.cacheRepo.SaveOpeningHours(hourRows); err != nil {
		log.Printf("Failed to save cached opening hours for business %d: %v", businessID, err)
	}
	if err := s.cacheRepo.SaveImages(imageRows); err != nil {
		log.Printf("Failed to save cached images for business %d: %v", businessID, err)
	}

	s.existence.Set(ctx, existenceKey(businessID), true, existenceTTL)
}

func existenceKey(businessID uint) string {
	return fmt.Sprintf("place-cache:%d", businessID)
}

// splitHourRanges decomposes an hours string into up to two open/close pairs,
// e.g. "09:00 - 12:00, 14:00 - 18:00" -> ("09:00", "12:00", "14:00", "18:00").
func splitHourRanges(hours string) (open1, close1, open2, close2 string) {
	ranges := strings.Split(hours, ",")
	if len(ranges) > 0 {
		open1, close1 = splitRange(ranges[0])
	}
	if len(ranges) > 1 {
		open2, close2 = splitRange(ranges[1])
	}
	return open1, close1, open2, close2
}

func splitRange(r string) (open, close string) {
	open, close, ok := firstTimeRange(strings.TrimSpace(r))
	if !ok {
		return "", ""
	}
	return open, close
}
