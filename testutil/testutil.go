// Package testutil wires a real router against an in-memory database for
// handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shoppyhq/shoppy-api/auth"
	"github.com/shoppyhq/shoppy-api/config"
	"github.com/shoppyhq/shoppy-api/models"
	"github.com/shoppyhq/shoppy-api/routes"
)

// Password is the plaintext used for every fixture user.
const Password = "Password1!"

var (
	hashOnce     sync.Once
	passwordHash string
)

// fixtureHash hashes Password once per test binary; bcrypt at cost 12 is too
// slow to rerun for every fixture user.
func fixtureHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := auth.HashPassword(Password)
		if err != nil {
			t.Fatalf("hash fixture password: %v", err)
		}
		passwordHash = h
	})
	return passwordHash
}

// Setup opens a fresh in-memory database, migrates the schema and returns a
// fully wired router.
func Setup(t *testing.T) (*gorm.DB, *gin.Engine, config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))

	cfg := config.Config{
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db, cfg)
	return db, r, cfg
}

func CreateUser(t *testing.T, db *gorm.DB, email string, admin bool) models.User {
	t.Helper()
	user := models.User{
		Email:          email,
		FullName:       "Test User",
		HashedPassword: fixtureHash(t),
		IsAdmin:        admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:     name,
		Category: "Electronics",
		Price:    price,
		Stock:    stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// BearerToken returns an Authorization header value for the given user.
func BearerToken(t *testing.T, cfg config.Config, email string) string {
	t.Helper()
	token, err := auth.IssueToken(cfg.JWTSecret, email, cfg.TokenTTL)
	require.NoError(t, err)
	return "Bearer " + token
}

// Do performs a JSON request against the router. token may be empty for
// public endpoints.
func Do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DoForm performs a form-encoded request, used by the login endpoint.
func DoForm(t *testing.T, r *gin.Engine, method, path, form string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(form)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a JSON response body into out.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
