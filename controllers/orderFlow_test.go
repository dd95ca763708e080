package controllers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/azimeazdhan1231/trynex-lifestyle-api/initializers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/models"
	"github.com/gin-gonic/gin"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var registerTestDriver sync.Once

// openTestDB points the package-level connection at an in-memory database.
// The models declare MySQL collations on their columns, so the test driver
// registers those collation names with SQLite.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	registerTestDriver.Do(func() {
		sql.Register("sqlite3_mysql_collations", &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterCollation("utf8mb4_bin", strings.Compare)
			},
		})
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite3_mysql_collations", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.CustomOrder{},
	))

	initializers.DB = db
	return db
}

func newOrderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/order", CreateOrder)
	router.GET("/track/:trackingId", TrackOrder)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// seedCheckoutCart creates two catalog products and a cart holding three
// units across them, totalling 1300.
func seedCheckoutCart(t *testing.T, db *gorm.DB, cartKey string) models.Cart {
	t.Helper()

	mug := models.Product{Name: "Ceramic Mug", Category: "mugs", Price: decimal.NewFromInt(300), Stock: 5}
	shirt := models.Product{Name: "Printed T-Shirt", Category: "apparel", Price: decimal.NewFromInt(500), Stock: 10}
	require.NoError(t, db.Create(&mug).Error)
	require.NoError(t, db.Create(&shirt).Error)

	cart := models.Cart{
		CartKey: cartKey,
		Items: []models.CartItem{
			{
				ProductId:   shirt.ID,
				ProductName: shirt.Name,
				UnitPrice:   shirt.Price,
				Quantity:    2,
				IdentityKey: models.IdentityKey(shirt.ID, nil),
			},
			{
				ProductId:   mug.ID,
				ProductName: mug.Name,
				UnitPrice:   mug.Price,
				Quantity:    1,
				IdentityKey: models.IdentityKey(mug.ID, nil),
			},
		},
	}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}

func checkoutPayload(cartKey string) gin.H {
	return gin.H{
		"cartKey":       cartKey,
		"customerName":  "Rahim Uddin",
		"phone":         "01712345678",
		"district":      "Dhaka",
		"thana":         "Mirpur",
		"address":       "House 12, Road 3",
		"paymentMethod": "cod",
	}
}

func TestCreateOrderPersistsOrderAndClearsCart(t *testing.T) {
	db := openTestDB(t)
	cart := seedCheckoutCart(t, db, "session-checkout")
	router := newOrderRouter()

	recorder := performJSON(t, router, http.MethodPost, "/order", checkoutPayload(cart.CartKey))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response struct {
		TrackingID string `json:"trackingId"`
		Total      string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.TrackingID, "TRX-"))
	assert.Equal(t, "1300", response.Total)

	var order models.Order
	require.NoError(t, db.Where("tracking_id = ?", response.TrackingID).First(&order).Error)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(1300)))

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining).Error)
	assert.Zero(t, remaining, "cart should be emptied by the committed checkout")
}

func TestCreateOrderPersistenceFailureKeepsCart(t *testing.T) {
	db := openTestDB(t)
	cart := seedCheckoutCart(t, db, "session-rollback")
	require.NoError(t, db.Migrator().DropTable(&models.Order{}))
	router := newOrderRouter()

	recorder := performJSON(t, router, http.MethodPost, "/order", checkoutPayload(cart.CartKey))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code, recorder.Body.String())

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining).Error)
	assert.EqualValues(t, 2, remaining, "a failed checkout must leave the cart untouched")
}

func TestCreateOrderCartLoadFailureIsServerError(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Cart{}))
	router := newOrderRouter()

	recorder := performJSON(t, router, http.MethodPost, "/order", checkoutPayload("session-broken"))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code, recorder.Body.String())

	var response struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, msgFailedToFetchCart, response.Message)
}

func TestCreateOrderMissingCartIsValidationError(t *testing.T) {
	openTestDB(t)
	router := newOrderRouter()

	recorder := performJSON(t, router, http.MethodPost, "/order", checkoutPayload("session-nobody"))
	require.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())

	var response struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, msgValidationFailed, response.Message)
	assert.Contains(t, response.Errors, "items")
}

func TestTrackOrderUniformNotFound(t *testing.T) {
	openTestDB(t)
	router := newOrderRouter()

	unknown := performJSON(t, router, http.MethodGet, "/track/TRX-UNKNOWN-0000000000", nil)
	malformed := performJSON(t, router, http.MethodGet, "/track/not-a-tracking-id", nil)

	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Equal(t, http.StatusNotFound, malformed.Code)
	assert.JSONEq(t, unknown.Body.String(), malformed.Body.String(),
		"an absent id and a malformed id must be indistinguishable")
	assert.Contains(t, unknown.Body.String(), msgTrackingNotFound)
}

func TestTrackOrderMatchesCaseSensitively(t *testing.T) {
	db := openTestDB(t)
	router := newOrderRouter()

	order := models.Order{
		TrackingID:    "TRX-ABC123-DEF4567890",
		CustomerName:  "Karim",
		Phone:         "01712345678",
		District:      "Dhaka",
		Thana:         "Uttara",
		Address:       "House 1",
		Items:         models.OrderItemList{{ProductId: 1, Name: "Ceramic Mug", Price: decimal.NewFromInt(300), Quantity: 1}},
		Total:         decimal.NewFromInt(300),
		PaymentMethod: "cod",
		PaymentAmount: decimal.NewFromInt(300),
		Status:        models.StatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	exact := performJSON(t, router, http.MethodGet, "/track/"+order.TrackingID, nil)
	require.Equal(t, http.StatusOK, exact.Code, exact.Body.String())
	assert.Contains(t, exact.Body.String(), order.TrackingID)

	lowered := performJSON(t, router, http.MethodGet, "/track/"+strings.ToLower(order.TrackingID), nil)
	assert.Equal(t, http.StatusNotFound, lowered.Code, "tracking ids differ by case alone")
}
