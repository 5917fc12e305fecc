package models

import "time"

// VisitorBusinessReview is a visitor-written review of a business. New reviews
// start unapproved and become visible once moderated.
type VisitorBusinessReview struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	BusinessID       uint      `json:"business_id" gorm:"index"`
	VisitorAccountID int64     `json:"visitor_account_id" gorm:"index"`
	Rating           string    `json:"rating" gorm:"type:varchar(10)"`
	Remarks          string    `json:"remarks" gorm:"type:text"`
	Pic1             string    `json:"pic_1,omitempty" gorm:"type:varchar(500)"`
	Pic2             string    `json:"pic_2,omitempty" gorm:"type:varchar(500)"`
	Pic3             string    `json:"pic_3,omitempty" gorm:"type:varchar(500)"`
	Pic4             string    `json:"pic_4,omitempty" gorm:"type:varchar(500)"`
	Pic5             string    `json:"pic_5,omitempty" gorm:"type:varchar(500)"`
	Pic6             string    `json:"pic_6,omitempty" gorm:"type:varchar(500)"`
	Pic7             string    `json:"pic_7,omitempty" gorm:"type:varchar(500)"`
	Pic8             string    `json:"pic_8,omitempty" gorm:"type:varchar(500)"`
	Pic9             string    `json:"pic_9,omitempty" gorm:"type:varchar(500)"`
	Pic10            string    `json:"pic_10,omitempty" gorm:"type:varchar(500)"`
	Video1           string    `json:"video_1,omitempty" gorm:"type:varchar(500)"`
	LikeCount        int       `json:"like_count"`
	Approved         int       `json:"approved"`
	CreationDatetime time.Time `json:"creation_datetime"`
}
