package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"

	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Order is the immutable checkout snapshot. Prices and the total are frozen
// at creation; only status, payment_status and updated_at change afterwards.
type Order struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	UserID               uint          `gorm:"not null;index" json:"user_id"`
	Reference            string        `gorm:"size:64" json:"reference"`
	Status               OrderStatus   `gorm:"type:VARCHAR(20);not null;default:'PENDING'" json:"status"`
	PaymentStatus        PaymentStatus `gorm:"type:VARCHAR(20);not null;default:'PENDING'" json:"payment_status"`
	TotalAmount          float64       `gorm:"not null;default:0" json:"total_amount"`
	ShippingCustomerName string        `gorm:"size:255" json:"shipping_customer_name"`
	ShippingAddress      string        `gorm:"type:text" json:"shipping_address"`
	ShippingPhone        string        `gorm:"size:32" json:"shipping_phone"`
	ShippingEmail        string        `gorm:"size:255" json:"shipping_email"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`

	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

// ParseOrderStatus maps a request string onto an OrderStatus, case-insensitively.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToUpper(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}
