package models

import "time"

// GoogleReview is a review in the unified place-data shape.
type GoogleReview struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	ProfilePhotoURL         string  `json:"profile_photo_url"`
}

// OpeningHourDay is a single weekday entry, e.g. {Day: "Monday", Hours: "09:00 - 18:00"}.
// A split schedule is rendered as a second comma-separated range.
type OpeningHourDay struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// GooglePhoto is a photo in the unified place-data shape.
type GooglePhoto struct {
	PhotoURL string `json:"photoUrl"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// PlaceData is the unified place-data object returned to pages, whether it
// came from the local cache or a live Places API call.
type PlaceData struct {
	Name         string           `json:"name"`
	Rating       float64          `json:"rating"`
	TotalReviews int              `json:"totalReviews"`
	Reviews      []GoogleReview   `json:"reviews"`
	OpeningHours []OpeningHourDay `json:"openingHours"`
	Photos       []GooglePhoto    `json:"photos"`
	// IsOpenNow comes straight from Google's open_now flag on a fresh fetch
	// (it accounts for holidays and special hours) but is recomputed from the
	// stored weekday ranges on a cache hit, since the flag itself is
	// time-varying and must never be cached.
	IsOpenNow   bool      `json:"isOpenNow"`
	Cached      bool      `json:"cached"`
	LastUpdated time.Time `json:"lastUpdated"`
}
