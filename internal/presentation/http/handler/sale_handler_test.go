package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/nasaem/pos-api/internal/application/service"
	"github.com/nasaem/pos-api/internal/config"
	"github.com/nasaem/pos-api/internal/domain/entity"
	"github.com/nasaem/pos-api/internal/infrastructure/repository"
	"github.com/nasaem/pos-api/internal/presentation/http/handler"
	"github.com/nasaem/pos-api/internal/presentation/http/routes"
	"github.com/nasaem/pos-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// An in-memory database exists per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Sale{}, &entity.SaleItem{}))

	cfg := &config.Config{
		App:  config.AppConfig{Name: "pos-api-test", Timezone: "UTC"},
		Auth: config.AuthConfig{Username: "operator", Password: "admin123"},
		JWT:  config.JWTConfig{Secret: "test-secret", ExpiryHours: time.Hour},
	}
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	saleService := service.NewSaleService(repository.NewSaleRepository(db), time.UTC)
	router := routes.Setup(&routes.Handlers{
		Auth:    handler.NewAuthHandler(service.NewAuthService(&cfg.Auth, jwtManager)),
		Catalog: handler.NewCatalogHandler(service.NewCatalogService()),
		Sale:    handler.NewSaleHandler(saleService),
		Report:  handler.NewReportHandler(service.NewReportService(saleService)),
	}, &routes.Deps{JWTManager: jwtManager, Cfg: cfg})

	token, err := jwtManager.GenerateToken("operator")
	require.NoError(t, err)
	return router, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success, "unexpected failure: %s", env.Message)
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

func createSale(t *testing.T, router *gin.Engine, token string, ts int64, method string, lines ...map[string]interface{}) entity.Sale {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", token, map[string]interface{}{
		"items":         lines,
		"timestamp":     ts,
		"paymentMethod": method,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sale entity.Sale
	decodeData(t, w, &sale)
	return sale
}

func line(name, category string, unitPrice float64, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"name":      name,
		"category":  category,
		"unitPrice": unitPrice,
		"quantity":  quantity,
	}
}

func TestSalesRequireAuth(t *testing.T) {
	router, _ := newTestServer(t)

	for _, path := range []string{"/api/v1/sales", "/api/v1/sales/summary", "/api/v1/products"} {
		w := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginFlow(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "operator", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	decodeData(t, w, &result)
	require.NotEmpty(t, result.Token)

	me := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", result.Token, nil)
	assert.Equal(t, http.StatusOK, me.Code)

	bad := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "operator", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
}

func TestCreateAndListSales(t *testing.T) {
	router, token := newTestServer(t)

	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	created := createSale(t, router, token, ts, "cash",
		line("Tiger Oud (1 oz)", "Oud", 90, 2),
		line("Lighter", "Supplies", 20, 1),
	)
	assert.Equal(t, 200.0, created.Total)
	assert.Equal(t, "2024-01-01", created.DateKey)

	var sales []entity.Sale
	w := doJSON(t, router, http.MethodGet, "/api/v1/sales", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sales)

	require.Len(t, sales, 1)
	assert.Equal(t, created.ID, sales[0].ID)
	assert.Equal(t, created.Total, sales[0].Total)
	assert.Equal(t, created.PaymentMethod, sales[0].PaymentMethod)
	require.Len(t, sales[0].Items, 2)
	assert.Equal(t, "Tiger Oud (1 oz)", sales[0].Items[0].Name)
}

func TestCreateEmptyCartIsIgnored(t *testing.T) {
	router, token := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", token, map[string]interface{}{
		"items":         []map[string]interface{}{},
		"timestamp":     time.Now().UnixMilli(),
		"paymentMethod": "cash",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var sales []entity.Sale
	list := doJSON(t, router, http.MethodGet, "/api/v1/sales", token, nil)
	decodeData(t, list, &sales)
	assert.Empty(t, sales)
}

func TestCreateRejectsUnknownPaymentMethod(t *testing.T) {
	router, token := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", token, map[string]interface{}{
		"items":         []map[string]interface{}{line("Lighter", "Supplies", 20, 1)},
		"timestamp":     time.Now().UnixMilli(),
		"paymentMethod": "cheque",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailySummaryScenario(t *testing.T) {
	router, token := newTestServer(t)

	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	createSale(t, router, token, day1.UnixMilli(), "cash", line("Royal Bakhoor (small)", "Bakhoor", 45, 1))
	createSale(t, router, token, day1.Add(time.Hour).UnixMilli(), "card", line("Oud Oil (large)", "Oud Oil", 120, 1))
	createSale(t, router, token, day2.UnixMilli(), "card", line("Kalimantan (1 oz)", "Oud", 120, 1))

	w := doJSON(t, router, http.MethodGet, "/api/v1/sales/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []service.DaySummary
	decodeData(t, w, &summaries)
	require.Len(t, summaries, 2)

	assert.Equal(t, "2024-01-02", summaries[0].DateKey)
	assert.Len(t, summaries[0].Sales, 1)
	assert.Equal(t, 120.0, summaries[0].DayTotal)

	assert.Equal(t, "2024-01-01", summaries[1].DateKey)
	assert.Len(t, summaries[1].Sales, 2)
	assert.Equal(t, 165.0, summaries[1].DayTotal)
	assert.Equal(t, 45.0, summaries[1].CashTotal)
	assert.Equal(t, 120.0, summaries[1].NetworkTotal)
}

func TestDeleteOneAndClearAll(t *testing.T) {
	router, token := newTestServer(t)
	ts := time.Now().UnixMilli()

	first := createSale(t, router, token, ts, "cash", line("Lighter", "Supplies", 20, 1))
	createSale(t, router, token, ts+1000, "card", line("Charcoal (large)", "Supplies", 40, 1))

	// Deleting an unknown id is a silent no-op.
	w := doJSON(t, router, http.MethodDelete, "/api/v1/sales/no-such-id", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/sales/"+first.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var sales []entity.Sale
	decodeData(t, doJSON(t, router, http.MethodGet, "/api/v1/sales", token, nil), &sales)
	require.Len(t, sales, 1)
	assert.NotEqual(t, first.ID, sales[0].ID)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/sales", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	decodeData(t, doJSON(t, router, http.MethodGet, "/api/v1/sales", token, nil), &sales)
	assert.Empty(t, sales)
}

func TestCatalogEndpoints(t *testing.T) {
	router, token := newTestServer(t)

	var products []entity.Product
	w := doJSON(t, router, http.MethodGet, "/api/v1/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &products)
	assert.NotEmpty(t, products)

	var categories []string
	w = doJSON(t, router, http.MethodGet, "/api/v1/products/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &categories)
	assert.NotEmpty(t, categories)

	for _, p := range products {
		assert.Contains(t, categories, p.Category, fmt.Sprintf("product %s has unlisted category", p.ID))
	}
}
