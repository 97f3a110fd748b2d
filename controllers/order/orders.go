package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/middleware"
	"github.com/shoppyhq/shoppy-api/models"
)

var errEmptyCart = errors.New("cart is empty")

type PaymentInfo struct {
	CardholderName string `json:"cardholder_name" binding:"required"`
	CardLast4      string `json:"card_last4" binding:"required,len=4"`
	ExpiryMonth    int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" binding:"required,min=2024"`
}

type PlaceOrderRequest struct {
	ShippingCustomerName string      `json:"shipping_customer_name" binding:"max=255"`
	ShippingAddress      string      `json:"shipping_address" binding:"max=1000"`
	ShippingPhone        string      `json:"shipping_phone" binding:"max=32"`
	ShippingEmail        string      `json:"shipping_email" binding:"omitempty,email"`
	Payment              PaymentInfo `json:"payment" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// normalizePhone strips formatting and requires exactly ten digits.
func normalizePhone(phone string) (string, error) {
	if phone == "" {
		return "", nil
	}
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) != 10 {
		return "", errors.New("Phone number must be exactly 10 digits")
	}
	return string(digits), nil
}

func newOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /orders runs the checkout transaction.
//
// Snapshots the cart into an immutable Order + OrderItems at current product
// prices, decrements stock where enough remains, and clears the cart. All of
// it commits or none of it does.
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Payment is a structural stub: four digits means the charge "succeeds".
		if !isDigits(req.Payment.CardLast4) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card information"})
			return
		}

		phone, err := normalizePhone(req.ShippingPhone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			var items []models.CartItem
			if err := tx.Preload("Product").
				Where("user_id = ?", user.ID).
				Order("id").
				Find(&items).Error; err != nil {
				return err
			}
			if len(items) == 0 {
				return errEmptyCart
			}

			// Total is frozen here and never recomputed, even if product
			// prices change later.
			var total float64
			for _, item := range items {
				total += float64(item.Quantity) * item.Product.Price
			}

			now := time.Now().UTC()
			order = models.Order{
				UserID:               user.ID,
				Reference:            newOrderReference(),
				Status:               models.OrderStatusConfirmed,
				PaymentStatus:        models.PaymentStatusPaid,
				TotalAmount:          total,
				ShippingCustomerName: req.ShippingCustomerName,
				ShippingAddress:      req.ShippingAddress,
				ShippingPhone:        phone,
				ShippingEmail:        req.ShippingEmail,
				CreatedAt:            now,
				UpdatedAt:            now,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			for _, item := range items {
				orderItem := models.OrderItem{
					OrderID:   order.ID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					UnitPrice: item.Product.Price,
					Subtotal:  float64(item.Quantity) * item.Product.Price,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}

				// Single conditional statement keeps stock >= 0 under
				// concurrent checkouts; insufficient stock skips the
				// decrement but never fails the order.
				if err := tx.Model(&models.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
					return err
				}
			}

			return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			if errors.Is(err, errEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		var placed models.Order
		if err := db.Preload("Items").Preload("Items.Product").First(&placed, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}
		c.JSON(http.StatusCreated, placed)
	}
}

// GET /orders lists the current user's orders, newest first, without items.
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.Where("user_id = ?", user.ID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id enforces ownership; a foreign order is a plain 404.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").
			Where("id = ? AND user_id = ?", orderID, user.ID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /orders/:id/status is an admin-only force-set. Transitions are not
// validated against the current state.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		order.Status = status
		order.UpdatedAt = time.Now().UTC()
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		if err := db.Preload("Items").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
