package models

import "time"

// Business represents a restaurant listing.
type Business struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	BusinessName string `json:"business_name" gorm:"type:varchar(255)"`
	PlaceID      string `json:"place_id" gorm:"type:varchar(255)"` // Google Places identifier, may be empty
	Address      string `json:"address" gorm:"type:varchar(255)"`
	City         string `json:"city" gorm:"type:varchar(100)"`
	ZipCode      string `json:"zip_code" gorm:"type:varchar(20)"`
	Phone        string `json:"phone" gorm:"type:varchar(50)"`
	Email        string `json:"email" gorm:"type:varchar(255)"`
	WebAddress   string `json:"web_address" gorm:"type:varchar(255)"`
}

// BusinessGoogleReview is a cached Google review row, keyed by (business id, place id).
// Rating is stored string-encoded, exactly as received.
type BusinessGoogleReview struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BusinessID       uint      `json:"business_id" gorm:"index:idx_google_review_key"`
	PlaceID          string    `json:"place_id" gorm:"index:idx_google_review_key;type:varchar(255)"`
	Author           string    `json:"author" gorm:"type:varchar(255)"`
	Rating           string    `json:"rating" gorm:"type:varchar(10)"`
	Review           string    `json:"review" gorm:"type:text"`
	RelativeTime     string    `json:"relative_time" gorm:"type:varchar(100)"`
	ProfilePhotoURL  string    `json:"profile_photo_url" gorm:"type:varchar(500)"`
	CreationDatetime time.Time `json:"creation_datetime"`
}

// BusinessOpeningHours is a cached opening-hours row, one per weekday,
// with up to two open/close pairs and the raw remarks string.
type BusinessOpeningHours struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BusinessID       uint      `json:"business_id" gorm:"index:idx_opening_hours_key"`
	PlaceID          string    `json:"place_id" gorm:"index:idx_opening_hours_key;type:varchar(255)"`
	Day              string    `json:"day" gorm:"type:varchar(20)"`
	Open1            string    `json:"open_1" gorm:"type:varchar(10)"`
	Close1           string    `json:"close_1" gorm:"type:varchar(10)"`
	Open2            string    `json:"open_2" gorm:"type:varchar(10)"`
	Close2           string    `json:"close_2" gorm:"type:varchar(10)"`
	Remarks          string    `json:"remarks" gorm:"type:varchar(255)"`
	CreationDatetime time.Time `json:"creation_datetime"`
}

// BusinessGoogleImage is a cached Google photo row. Width and height are
// stored string-encoded and parsed back on read.
type BusinessGoogleImage struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BusinessID       uint      `json:"business_id" gorm:"index:idx_google_image_key"`
	PlaceID          string    `json:"place_id" gorm:"index:idx_google_image_key;type:varchar(255)"`
	ImageURL         string    `json:"image_url" gorm:"type:varchar(500)"`
	Width            string    `json:"width" gorm:"type:varchar(10)"`
	Height           string    `json:"height" gorm:"type:varchar(10)"`
	CreationDatetime time.Time `json:"creation_datetime"`
}
