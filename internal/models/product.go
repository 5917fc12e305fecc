package models

import "time"

// BusinessProduct represents a menu item offered by a business.
type BusinessProduct struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	BusinessID  uint      `json:"business_id" gorm:"index"`
	ProductName string    `json:"product_name" validate:"required,min=2,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	ProductUnit string    `json:"product_unit" gorm:"type:varchar(50)"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	PicURL      string    `json:"pic_url" gorm:"type:varchar(500)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
