package reviewControllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reviewControllers "github.com/shoppyhq/shoppy-api/controllers/review"
	"github.com/shoppyhq/shoppy-api/models"
	"github.com/shoppyhq/shoppy-api/testutil"
)

func TestCreateAndListReviews(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "alice@example.com", false)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)
	token := testutil.BearerToken(t, cfg, "alice@example.com")

	w := testutil.Do(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID), token,
		map[string]any{"comment": "Fast and quiet.", "rating": 5})
	require.Equal(t, http.StatusCreated, w.Code)

	var review reviewControllers.ReviewView
	testutil.Decode(t, w, &review)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Test User", review.UserName)

	// Listing is public.
	w = testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/products/%d/reviews", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []reviewControllers.ReviewView
	testutil.Decode(t, w, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Fast and quiet.", reviews[0].Comment)

	w = testutil.Do(t, r, http.MethodGet, "/products/9999/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReviewDuplicate(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "alice@example.com", false)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)
	token := testutil.BearerToken(t, cfg, "alice@example.com")

	w := testutil.Do(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID), token,
		map[string]any{"comment": "Great.", "rating": 4})
	require.Equal(t, http.StatusCreated, w.Code)

	// One review per user per product.
	w = testutil.Do(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID), token,
		map[string]any{"comment": "Changed my mind.", "rating": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already reviewed")
}

func TestUpdateReviewOwnership(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	alice := testutil.CreateUser(t, db, "alice@example.com", false)
	testutil.CreateUser(t, db, "bob@example.com", false)
	testutil.CreateUser(t, db, "admin@example.com", true)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)

	rating := 4
	review := models.Review{UserID: alice.ID, ProductID: product.ID, Comment: "Great.", Rating: &rating}
	require.NoError(t, db.Create(&review).Error)

	bobToken := testutil.BearerToken(t, cfg, "bob@example.com")
	w := testutil.Do(t, r, http.MethodPut, fmt.Sprintf("/reviews/%d", review.ID), bobToken,
		map[string]any{"comment": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The owner can edit.
	aliceToken := testutil.BearerToken(t, cfg, "alice@example.com")
	w = testutil.Do(t, r, http.MethodPut, fmt.Sprintf("/reviews/%d", review.ID), aliceToken,
		map[string]any{"rating": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var updated reviewControllers.ReviewView
	testutil.Decode(t, w, &updated)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "Great.", updated.Comment)

	// Admin can edit anyone's review.
	adminToken := testutil.BearerToken(t, cfg, "admin@example.com")
	w = testutil.Do(t, r, http.MethodPut, fmt.Sprintf("/reviews/%d", review.ID), adminToken,
		map[string]any{"comment": "Moderated."})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteReviewOwnership(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	alice := testutil.CreateUser(t, db, "alice@example.com", false)
	testutil.CreateUser(t, db, "bob@example.com", false)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)

	rating := 4
	review := models.Review{UserID: alice.ID, ProductID: product.ID, Comment: "Great.", Rating: &rating}
	require.NoError(t, db.Create(&review).Error)

	bobToken := testutil.BearerToken(t, cfg, "bob@example.com")
	w := testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	aliceToken := testutil.BearerToken(t, cfg, "alice@example.com")
	w = testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.Do(t, r, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewRatingDefaultsToOne(t *testing.T) {
	db, r, _ := testutil.Setup(t)
	alice := testutil.CreateUser(t, db, "alice@example.com", false)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)

	// Legacy row with no rating.
	review := models.Review{UserID: alice.ID, ProductID: product.ID, Comment: "Old review."}
	require.NoError(t, db.Create(&review).Error)

	w := testutil.Do(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", review.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got reviewControllers.ReviewView
	testutil.Decode(t, w, &got)
	assert.Equal(t, 1, got.Rating)
}

func TestCreateReviewValidation(t *testing.T) {
	db, r, cfg := testutil.Setup(t)
	testutil.CreateUser(t, db, "alice@example.com", false)
	product := testutil.CreateProduct(t, db, "Laptop", 999.99, 5)
	token := testutil.BearerToken(t, cfg, "alice@example.com")

	w := testutil.Do(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID), token,
		map[string]any{"comment": "Bad rating.", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodPost, fmt.Sprintf("/products/%d/reviews", product.ID), token,
		map[string]any{"rating": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
