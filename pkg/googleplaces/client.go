package googleplaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"
	photoBaseURL   = "https://maps.googleapis.com/maps/api/place/photo"

	// detailFields is the field mask requested from the Place Details API.
	detailFields = "name,rating,user_ratings_total,reviews,url,opening_hours,photos,geometry"

	// maxReviews caps how many upstream reviews are kept.
	maxReviews = 5

	// photoMaxWidth is embedded in every generated photo fetch URL.
	photoMaxWidth = 800
)

// ErrAPIKeyMissing is returned when no Google API credential is configured.
var ErrAPIKeyMissing = errors.New("google api key is not configured")

// Config holds Google Places client settings.
type Config struct {
	APIKey  string
	BaseURL string // defaults to the Place Details endpoint; overridable for tests
}

// Client calls the Google Place Details API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a new Places API client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
	}
}

type placeReview struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	ProfilePhotoURL         string  `json:"profile_photo_url"`
}

type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type placeOpeningHours struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type placeDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string             `json:"name"`
		Rating           float64            `json:"rating"`
		UserRatingsTotal int                `json:"user_ratings_total"`
		Reviews          []placeReview      `json:"reviews"`
		OpeningHours     *placeOpeningHours `json:"opening_hours"`
		Photos           []placePhoto       `json:"photos"`
	} `json:"result"`
}

// FetchPlaceDetails retrieves place details for a place ID and transforms the
// payload into the unified place-data shape.
func (c *Client) FetchPlaceDetails(ctx context.Context, placeID string) (*models.PlaceData, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	if placeID == "" {
		return nil, fmt.Errorf("place ID is required")
	}

	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", detailFields)
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build place details request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place details request returned HTTP %d", resp.StatusCode)
	}

	var payload placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode place details response: %w", err)
	}

	if payload.Status != "OK" {
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("place details request failed: %s (%s)", payload.ErrorMessage, payload.Status)
		}
		return nil, fmt.Errorf("place details request failed with status %s", payload.Status)
	}

	return c.transform(&payload), nil
}

// transform maps the upstream payload to the unified place-data shape:
// at most maxReviews reviews, photo references expanded to fetch URLs, and
// weekday text lines split on their first ": " into (day, hours).
func (c *Client) transform(payload *placeDetailsResponse) *models.PlaceData {
	result := payload.Result

	reviews := make([]models.GoogleReview, 0, maxReviews)
	for i, review := range result.Reviews {
		if i == maxReviews {
			break
		}
		reviews = append(reviews, models.GoogleReview{
			AuthorName:              review.AuthorName,
			Rating:                  review.Rating,
			Text:                    review.Text,
			RelativeTimeDescription: review.RelativeTimeDescription,
			ProfilePhotoURL:         review.ProfilePhotoURL,
		})
	}

	photos := make([]models.GooglePhoto, 0, len(result.Photos))
	for _, photo := range result.Photos {
		photos = append(photos, models.GooglePhoto{
			PhotoURL: c.PhotoURL(photo.PhotoReference, photoMaxWidth),
			Width:    photo.Width,
			Height:   photo.Height,
		})
	}

	openingHours := make([]models.OpeningHourDay, 0)
	isOpenNow := false
	if result.OpeningHours != nil {
		isOpenNow = result.OpeningHours.OpenNow
		for _, line := range result.OpeningHours.WeekdayText {
			day, hours := splitWeekdayText(line)
			openingHours = append(openingHours, models.OpeningHourDay{
				Day:   day,
				Hours: hours,
			})
		}
	}

	return &models.PlaceData{
		Name:         result.Name,
		Rating:       result.Rating,
		TotalReviews: result.UserRatingsTotal,
		Reviews:      reviews,
		OpeningHours: openingHours,
		Photos:       photos,
		IsOpenNow:    isOpenNow,
		Cached:       false,
		LastUpdated:  time.Now(),
	}
}

// PhotoURL builds a fetch URL for a photo reference with the requested max width.
func (c *Client) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf("%s?maxwidth=%d&photoreference=%s&key=%s", photoBaseURL, maxWidth, photoReference, c.apiKey)
}

// splitWeekdayText splits a weekday line like "Monday: 09:00 - 18:00" on its
// first ": " into day name and hours text. Lines without hours become "Closed".
func splitWeekdayText(line string) (day, hours string) {
	for i := 0; i+1 < len(line); i++ {
		if line[i] == ':' && line[i+1] == ' ' {
			day = line[:i]
			hours = line[i+2:]
			if hours == "" {
				hours = "Closed"
			}
			return day, hours
		}
	}
	return line, "Closed"
}
