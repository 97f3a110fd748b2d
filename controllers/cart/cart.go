package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/middleware"
	"github.com/shoppyhq/shoppy-api/models"
)

type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateItemRequest struct {
	// Pointer so that an explicit 0 (meaning "remove the row") survives binding.
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

type CartItemProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type CartItemView struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
	Product  CartItemProduct `json:"product"`
}

// CartView is recomputed from current product prices on every read; cart
// subtotals are never frozen, unlike order items.
type CartView struct {
	Items         []CartItemView `json:"items"`
	TotalQuantity int            `json:"total_quantity"`
	TotalAmount   float64        `json:"total_amount"`
}

func buildCartView(db *gorm.DB, userID uint) (CartView, error) {
	var items []models.CartItem
	if err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error; err != nil {
		return CartView{}, err
	}

	view := CartView{Items: []CartItemView{}}
	for _, item := range items {
		subtotal := float64(item.Quantity) * item.Product.Price
		view.TotalQuantity += item.Quantity
		view.TotalAmount += subtotal
		view.Items = append(view.Items, CartItemView{
			ID:       item.ID,
			Quantity: item.Quantity,
			Subtotal: subtotal,
			Product: CartItemProduct{
				ID:       item.Product.ID,
				Name:     item.Product.Name,
				Category: item.Product.Category,
				Price:    item.Product.Price,
				ImageURL: item.Product.ImageURL,
			},
		})
	}
	return view, nil
}

func respondWithCart(c *gin.Context, db *gorm.DB, userID uint, status int) {
	view, err := buildCartView(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(status, view)
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondWithCart(c, db, middleware.CurrentUser(c).ID, http.StatusOK)
	}
}

// POST /cart/items
// Adding a product already in the cart accumulates quantity on the existing row.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += req.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:    user.ID,
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		respondWithCart(c, db, user.ID, http.StatusCreated)
	}
}

// PATCH /cart/items/:id
// Quantity 0 removes the row; it is not a representable state.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", itemID, user.ID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}

		if *req.Quantity == 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
		} else {
			item.Quantity = *req.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		respondWithCart(c, db, user.ID, http.StatusOK)
	}
}

// DELETE /cart/items/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		itemID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", itemID, user.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		respondWithCart(c, db, user.ID, http.StatusOK)
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		if err := db.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		respondWithCart(c, db, user.ID, http.StatusOK)
	}
}
