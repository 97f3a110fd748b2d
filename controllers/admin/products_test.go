package adminController_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoppyhq/shoppy-api/models"
	"github.com/shoppyhq/shoppy-api/testutil"
)

func TestCreateProduct(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "admin@example.com", true)
	token := testutil.BearerToken(t, cfg, "admin@example.com")

	w := testutil.Do(t, r, http.MethodPost, "/admin/products", token, map[string]any{
		"name":     "Mechanical Keyboard",
		"category": "Electronics",
		"price":    79.99,
		"stock":    12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	testutil.Decode(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Mechanical Keyboard", created.Name)
	assert.Equal(t, 12, created.Stock)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateProductValidation(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "admin@example.com", true)
	token := testutil.BearerToken(t, cfg, "admin@example.com")

	// Missing name.
	w := testutil.Do(t, r, http.MethodPost, "/admin/products", token, map[string]any{
		"price": 10.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative price.
	w = testutil.Do(t, r, http.MethodPost, "/admin/products", token, map[string]any{
		"name":  "Broken",
		"price": -1.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category.
	w = testutil.Do(t, r, http.MethodPost, "/admin/products", token, map[string]any{
		"name":     "Broken",
		"category": "Weapons",
		"price":    10.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid category")
}

func TestCreateProductsBulk(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "admin@example.com", true)
	token := testutil.BearerToken(t, cfg, "admin@example.com")

	w := testutil.Do(t, r, http.MethodPost, "/admin/products/bulk", token, []map[string]any{
		{"name": "Keyboard", "category": "Electronics", "price": 79.99, "stock": 12},
		{"name": "Novel", "category": "Books & Media", "price": 14.50, "stock": 30},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created []models.Product
	testutil.Decode(t, w, &created)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, created[1].ID)

	// One bad row rejects the whole batch.
	w = testutil.Do(t, r, http.MethodPost, "/admin/products/bulk", token, []map[string]any{
		{"name": "Mouse", "category": "Electronics", "price": 25.0},
		{"name": "Bad", "category": "Weapons", "price": 5.0},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpdateProduct(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "admin@example.com", true)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)
	token := testutil.BearerToken(t, cfg, "admin@example.com")

	w := testutil.Do(t, r, http.MethodPut, fmt.Sprintf("/admin/products/%d", product.ID), token, map[string]any{
		"name":     "Laptop Pro",
		"category": "Electronics",
		"price":    1299.99,
		"stock":    3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	testutil.Decode(t, w, &updated)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Equal(t, 1299.99, updated.Price)
	assert.Equal(t, 3, updated.Stock)

	w = testutil.Do(t, r, http.MethodPut, "/admin/products/9999", token, map[string]any{
		"name":  "Ghost",
		"price": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "admin@example.com", true)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)
	token := testutil.BearerToken(t, cfg, "admin@example.com")

	w := testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "alice@example.com", false)
	token := testutil.BearerToken(t, cfg, "alice@example.com")

	w := testutil.Do(t, r, http.MethodPost, "/admin/products", token, map[string]any{
		"name":  "Nope",
		"price": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not enough permissions")

	// No token at all.
	w = testutil.Do(t, r, http.MethodPost, "/admin/products", "", map[string]any{
		"name":  "Nope",
		"price": 1.0,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
