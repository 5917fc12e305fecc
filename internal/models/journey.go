package models

import "time"

// VisitorFoodJourney is a visitor's shared dining experience.
type VisitorFoodJourney struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	VisitorAccountID    int64     `json:"visitor_account_id" gorm:"index"`
	VisitorName         string    `json:"visitor_name" gorm:"type:varchar(255)"`
	VisitorEmailAddress string    `json:"visitor_email_address" gorm:"type:varchar(255)"`
	VisitorPic          string    `json:"visitor_pic" gorm:"type:varchar(500)"`
	Title               string    `json:"title" gorm:"type:varchar(255)" validate:"required,max=255"`
	Description         string    `json:"description" gorm:"type:text" validate:"required"`
	RestaurantName      string    `json:"restaurant_name" gorm:"type:varchar(255)"`
	AddressGoogleURL    string    `json:"address_google_url" gorm:"type:varchar(500)"`
	Pic1                string    `json:"pic_1,omitempty" gorm:"type:varchar(500)"`
	Pic2                string    `json:"pic_2,omitempty" gorm:"type:varchar(500)"`
	Pic3                string    `json:"pic_3,omitempty" gorm:"type:varchar(500)"`
	CreationDatetime    time.Time `json:"creation_datetime"`
}
