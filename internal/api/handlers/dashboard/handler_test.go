package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	dashboardapp "agrodashboard/internal/application/dashboard"
	dashboarddomain "agrodashboard/internal/domain/dashboard"
	"agrodashboard/internal/infrastructure/export"
	"agrodashboard/server/middleware"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

type fakeTables struct {
	tables      *dashboarddomain.Tables
	err         error
	invalidated int
}

func (f *fakeTables) Tables(ctx context.Context) (*dashboarddomain.Tables, error) {
	return f.tables, f.err
}

func (f *fakeTables) Invalidate() {
	f.invalidated++
}

func fixtureTables() *dashboarddomain.Tables {
	valor := func(v float64) *float64 { return &v }
	ts := func(days int) *time.Time {
		t := testNow.Add(-time.Duration(days) * 24 * time.Hour)
		return &t
	}
	return &dashboarddomain.Tables{
		Customers: []dashboarddomain.Customer{
			{UserID: "user_1", Nome: "Fazenda Boa Vista", UF: "MT", Cluster: "DIAMOND"},
			{UserID: "user_2", Nome: "Sítio Esperança", UF: "GO", Cluster: "SILVER"},
		},
		Products: []dashboarddomain.Product{
			{ItemID: "item_5", ItemDesc: "Fungicida Azoxistrobina", ItemClass: "Defensivos"},
		},
		History: []dashboarddomain.Transaction{
			{UserID: "user_1", ItemID: "item_1", Valor: valor(120), Timestamp: ts(5), Categoria: "Sementes"},
			{UserID: "user_1", ItemID: "item_2", Valor: valor(80), Timestamp: ts(40), Categoria: "Fertilizantes"},
		},
		Candidates: []dashboarddomain.RecommendationCandidate{
			{UserID: "user_1", RecID: "item_5"},
			{UserID: "user_1", RecID: "item_6"},
		},
		Rules: []dashboarddomain.AssociationRule{
			{Antecedents: "frozenset({'item_1'})", Consequent: "item_5", Lift: valor(3.4), Confidence: valor(0.71)},
		},
		Report: dashboarddomain.LoadReport{RulesAvailable: true},
	}
}

func setupRouter(t *testing.T, provider *fakeTables) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := dashboarddomain.NewService(provider, gofakeit.New(11), func() time.Time { return testNow })
	uc := dashboardapp.NewUseCase(service, export.NewXLSXExporter(), provider, dashboardapp.Options{})
	h := NewHandler(uc)

	router := gin.New()
	router.Use(middleware.GinRequestIDMiddleware())
	api := router.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/cache/invalidate", h.InvalidateCache)
	api.GET("/customers", h.ListCustomers)
	api.GET("/customers/:id", h.GetCustomer)
	api.GET("/customers/:id/dashboard", h.GetDashboard)
	api.GET("/customers/:id/history", h.GetHistory)
	api.GET("/customers/:id/recommendations", h.GetRecommendations)
	api.GET("/customers/:id/metrics", h.GetMetrics)
	api.GET("/customers/:id/abc", h.GetABC)
	api.GET("/customers/:id/monthly", h.GetMonthly)
	api.GET("/customers/:id/export", h.ExportDashboard)
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandlerStatusCodes(t *testing.T) {
	router := setupRouter(t, &fakeTables{tables: fixtureTables()})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"list customers", "/api/customers", http.StatusOK},
		{"get customer", "/api/customers/user_1", http.StatusOK},
		{"unknown customer", "/api/customers/user_404", http.StatusNotFound},
		{"dashboard", "/api/customers/user_1/dashboard", http.StatusOK},
		{"dashboard unknown", "/api/customers/user_404/dashboard", http.StatusNotFound},
		{"months not a number", "/api/customers/user_1/history?months=six", http.StatusBadRequest},
		{"months zero uses default", "/api/customers/user_1/history?months=0", http.StatusOK},
		{"months too large", "/api/customers/user_1/history?months=100", http.StatusBadRequest},
		{"top_n too large", "/api/customers/user_1/recommendations?top_n=500", http.StatusBadRequest},
		{"metrics", "/api/customers/user_1/metrics", http.StatusOK},
		{"abc", "/api/customers/user_1/abc", http.StatusOK},
		{"monthly", "/api/customers/user_1/monthly", http.StatusOK},
		{"bad limit", "/api/customers?limit=0", http.StatusBadRequest},
		{"bad offset", "/api/customers?offset=-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestGetDashboardResponse(t *testing.T) {
	router := setupRouter(t, &fakeTables{tables: fixtureTables()})

	w := doRequest(router, http.MethodGet, "/api/customers/user_1/dashboard?months=1&top_n=2")
	require.Equal(t, http.StatusOK, w.Code)

	var d dashboarddomain.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))

	assert.Equal(t, "user_1", d.Customer.UserID)
	assert.Equal(t, 1, d.Months)
	assert.Equal(t, 2, d.TopN)
	require.Len(t, d.History, 1)
	assert.Equal(t, "2025-06", d.History[0].Data)
	assert.Equal(t, 120.0, d.Metrics.ValorTotal)
	assert.True(t, d.RulesAvailable)

	require.Len(t, d.Recommendations, 2)
	top := d.Recommendations[0]
	if top.LiftSource == dashboarddomain.SourceReal {
		assert.Equal(t, "item_5", top.RecID)
		assert.Equal(t, "Correlação Apriori real (3.4x) com base em frozenset({'item_1'})", top.Razao)
		assert.Equal(t, "Defensivos", top.Categoria)
	}
	for _, rec := range d.Recommendations {
		if rec.RecID == "item_6" {
			assert.Equal(t, dashboarddomain.SourceFallback, rec.LiftSource)
			assert.Equal(t, "uncategorized", rec.Categoria)
			assert.Equal(t, "item_6", rec.ItemDesc)
		}
	}
}

func TestListCustomersFilters(t *testing.T) {
	router := setupRouter(t, &fakeTables{tables: fixtureTables()})

	w := doRequest(router, http.MethodGet, "/api/customers?cluster=silver")
	require.Equal(t, http.StatusOK, w.Code)

	var resp CustomerListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "user_2", resp.Customers[0].UserID)
	assert.Equal(t, 100, resp.Limit)
}

func TestErrorResponseBody(t *testing.T) {
	router := setupRouter(t, &fakeTables{tables: fixtureTables()})

	w := doRequest(router, http.MethodGet, "/api/customers/user_404")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "Cliente não encontrado", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
}

func TestTablesUnavailable(t *testing.T) {
	router := setupRouter(t, &fakeTables{err: errors.New("clientes: file not found")})

	w := doRequest(router, http.MethodGet, "/api/customers/user_1/dashboard")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var health dashboardapp.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, dashboardapp.StatusUnavailable, health.Status)
}

func TestHealthDegradedWithoutRules(t *testing.T) {
	tables := fixtureTables()
	tables.Rules = nil
	tables.Report = dashboarddomain.LoadReport{Notices: []string{"association rules not found"}}
	router := setupRouter(t, &fakeTables{tables: tables})

	w := doRequest(router, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var health dashboardapp.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, dashboardapp.StatusDegraded, health.Status)
}

func TestInvalidateCache(t *testing.T) {
	provider := &fakeTables{tables: fixtureTables()}
	router := setupRouter(t, provider)

	w := doRequest(router, http.MethodPost, "/api/cache/invalidate")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, provider.invalidated)
}

func TestExportDashboard(t *testing.T) {
	router := setupRouter(t, &fakeTables{tables: fixtureTables()})

	w := doRequest(router, http.MethodGet, "/api/customers/user_1/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dashboard_user_1_")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), export.SheetRecommendations)
}
