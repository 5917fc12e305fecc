package models

import "time"

// OrderDetail is a single line item within an order, priced at checkout time.
type OrderDetail struct {
	ID           int64   `json:"id" gorm:"primaryKey"`
	OrderID      int64   `json:"order_id" gorm:"index"`
	ProductID    int64   `json:"product_id"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"line_total"`
}

// Order is created exactly once per verified payment session. StripeSessionID
// carries a unique index so a duplicate verification call cannot materialize
// a second order for the same session.
type Order struct {
	ID                int64         `json:"id" gorm:"primaryKey"`
	CreationDatetime  time.Time     `json:"creation_datetime"`
	BusinessID        uint          `json:"business_id" gorm:"index"`
	VisitorAccountID  int64         `json:"visitor_account_id" gorm:"index"`
	StripeSessionID   string        `json:"-" gorm:"uniqueIndex;type:varchar(255)"`
	PaymentDone       int           `json:"payment_done"`
	OrderStatus       int           `json:"order_status"`
	OrderAmount       float64       `json:"order_amount"`
	OrderFinalAmount  float64       `json:"order_final_amount"`
	ShippingCharges   float64       `json:"shipping_charges"`
	FirstName         string        `json:"first_name" gorm:"type:varchar(100)"`
	LastName          string        `json:"last_name" gorm:"type:varchar(100)"`
	EmailAddress      string        `json:"email_address" gorm:"type:varchar(255)"`
	PhoneNumber       string        `json:"phone_number" gorm:"type:varchar(50)"`
	Street            string        `json:"street" gorm:"type:varchar(255)"`
	Zip               string        `json:"zip" gorm:"type:varchar(20)"`
	City              string        `json:"city" gorm:"type:varchar(100)"`
	Country           string        `json:"country" gorm:"type:varchar(100)"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
	Details           []OrderDetail `json:"details" gorm:"foreignKey:OrderID"`
}
