package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carneiro-api/internal/application/auth"
	"github.com/jhoicas/carneiro-api/internal/application/dto"
	"github.com/jhoicas/carneiro-api/internal/application/inventory"
	"github.com/jhoicas/carneiro-api/internal/application/report"
	"github.com/jhoicas/carneiro-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/carneiro-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/carneiro-api/internal/interfaces/http"
)

type apiFixture struct {
	app   *fiber.App
	store *inventory.Store
	admin string
	oper  string
}

func newAPI(t *testing.T, loginPerMinute int) *apiFixture {
	t.Helper()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	store, err := inventory.Open(context.Background(), nil, inventory.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	hash, err := bcrypt.GenerateFromPassword([]byte("caipirinha"), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase([]auth.Account{
		{ID: "op-admin", Username: "carneiro", PasswordHash: string(hash), Role: auth.RoleAdmin},
		{ID: "op-caixa", Username: "caixa", PasswordHash: string(hash), Role: auth.RoleOperator},
	}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:        store,
		AuthUC:       authUC,
		ReportUC:     report.NewReportUseCase(store, infrapdf.NewMarotoPDFGenerator()),
		LoginLimiter: apphttp.NewLoginLimiter(loginPerMinute),
		JWTSecret:    testJWTSecret,
	})

	f := &apiFixture{app: app, store: store}
	f.admin = f.login(t, "carneiro")
	f.oper = f.login(t, "caixa")
	return f
}

func (f *apiFixture) login(t *testing.T, user string) string {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: user, Password: "caipirinha"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return "Bearer " + out.Token
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		r = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLogin_BadCredentialsAndRateLimit(t *testing.T) {
	f := newAPI(t, 3) // dos logins del fixture + uno más

	resp := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "carneiro", Password: "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "carneiro", Password: "caipirinha"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "cupo por IP agotado")
}

func TestProducts_RequireToken(t *testing.T) {
	f := newAPI(t, 10)
	resp := f.do(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/auth/me", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, auth.RoleOperator, decode[dto.UserResponse](t, resp).Role)
}

func TestProducts_CRUD(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodPost, "/api/products", f.oper, map[string]any{"name": "", "unit": "xx"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	verr := decode[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", verr.Code)
	assert.NotEmpty(t, verr.Errors)

	body := map[string]any{
		"name": "Gin London Dry", "sku": "DEST-010", "category": "Destilados", "supplierId": "s-404",
		"unit": "garrafa", "cost": 70, "price": 160, "stock": 5, "minStock": 2,
	}
	resp = f.do(t, http.MethodPost, "/api/products", f.oper, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode, "proveedor inexistente")

	body["supplierId"] = "s-001"
	resp = f.do(t, http.MethodPost, "/api/products", f.oper, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[entity.Product](t, resp)
	assert.NotEmpty(t, created.ID)

	resp = f.do(t, http.MethodPut, "/api/products/"+created.ID, f.oper, map[string]any{"location": "Bar - Prateleira C"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[entity.Product](t, resp)
	assert.Equal(t, "Bar - Prateleira C", updated.Location)
	assert.Equal(t, "Gin London Dry", updated.Name, "merge parcial")

	resp = f.do(t, http.MethodGet, "/api/products?q=london", f.oper, nil)
	list := decode[dto.ProductListResponse](t, resp)
	require.Equal(t, 1, list.Total)

	resp = f.do(t, http.MethodDelete, "/api/products/"+created.ID, f.oper, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = f.do(t, http.MethodDelete, "/api/products/"+created.ID, f.oper, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = f.do(t, http.MethodPut, "/api/products/"+created.ID, f.oper, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_UpdateClearsExpiry(t *testing.T) {
	f := newAPI(t, 10)
	require.NotNil(t, mustGet(t, f, "p-003").ExpiryDate)

	resp := f.do(t, http.MethodPut, "/api/products/p-003", f.oper, []byte(`{"expiryDate":null,"maxStock":null}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[entity.Product](t, resp)
	assert.Nil(t, got.ExpiryDate)
	assert.Nil(t, got.MaxStock)
	assert.Nil(t, mustGet(t, f, "p-003").ExpiryDate)
}

func mustGet(t *testing.T, f *apiFixture, id string) entity.Product {
	t.Helper()
	p, ok := f.store.GetProduct(id)
	require.True(t, ok)
	return p
}

func TestProducts_StaticRoutesBeforeID(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodGet, "/api/products/low-stock", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, len(f.store.LowStockProducts()), decode[dto.ProductListResponse](t, resp).Total)

	resp = f.do(t, http.MethodGet, "/api/products/expiring", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, len(f.store.ExpiringProducts()), decode[dto.ProductListResponse](t, resp).Total)
}

func TestAdjustStock_AdminOnlyAndClamped(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodPatch, "/api/products/p-005/stock", f.oper, map[string]any{"delta": -1})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodPatch, "/api/products/p-005/stock", f.admin, map[string]any{"delta": -100})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[entity.Product](t, resp).Stock.IsZero(), "el stock no baja de cero")

	resp = f.do(t, http.MethodPatch, "/api/products/p-404/stock", f.admin, map[string]any{"delta": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMoves_EmployeeRules(t *testing.T) {
	f := newAPI(t, 10)
	move := func(employeeID string) map[string]any {
		return map[string]any{
			"productId": "p-001", "employeeId": employeeID, "type": "out",
			"quantity": 3, "reason": "venda",
		}
	}

	for _, id := range []string{"e-005", "e-003", "e-404"} {
		resp := f.do(t, http.MethodPost, "/api/moves", f.oper, move(id))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
	}

	resp := f.do(t, http.MethodPost, "/api/moves", f.oper, move("e-002"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	p, ok := f.store.GetProduct("p-001")
	require.True(t, ok)
	assert.Equal(t, "11", p.Stock.String())

	resp = f.do(t, http.MethodGet, "/api/moves?product_id=p-001&type=out", f.oper, nil)
	list := decode[dto.MoveListResponse](t, resp)
	assert.Equal(t, 2, list.Total)
}

func TestExportCSV_Latin1(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodGet, "/api/products/export.csv?encoding=latin1", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "iso-8859-1")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Cacha\xe7a Artesanal Ouro")
	assert.True(t, strings.HasPrefix(string(raw), "id;sku;ean;nome"))

	resp = f.do(t, http.MethodGet, "/api/moves/export.csv", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, 1+len(f.store.Moves(inventory.MoveFilter{})))
}

func TestSettings_UpdateValidates(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodPut, "/api/settings", f.oper, map[string]any{"primaryColor": "laranja"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPut, "/api/settings", f.oper, map[string]any{"alertDays": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s := decode[entity.Settings](t, resp)
	assert.Equal(t, 10, s.AlertDays)
	assert.Equal(t, "BAR DO CARNEIRO", s.BrandName)
}

func TestDashboard_SummaryAndReport(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodGet, "/api/dashboard/summary", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 8, sum.TotalProducts)
	require.NotEmpty(t, sum.RecentMoves)
	assert.NotEmpty(t, sum.RecentMoves[0].ProductName)

	resp = f.do(t, http.MethodGet, "/api/dashboard/report.pdf", f.oper, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "estoque-bar-do-carneiro")
}

func TestData_ExportImportReset(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodGet, "/api/data/export", f.oper, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/data/export", f.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	exported, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	resp = f.do(t, http.MethodPost, "/api/data/import", f.admin, []byte(`{"products":[]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SNAPSHOT", decode[dto.ErrorResponse](t, resp).Code)
	assert.Len(t, f.store.Products(), 8, "import fallido no modifica el estado")

	require.True(t, f.store.DeleteSupplier("s-001"))
	resp = f.do(t, http.MethodPost, "/api/data/import", f.admin, exported)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, ok := f.store.GetSupplier("s-001")
	assert.True(t, ok)

	require.True(t, f.store.DeleteProduct("p-001"))
	resp = f.do(t, http.MethodPost, "/api/data/reset", f.admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, ok = f.store.GetProduct("p-001")
	assert.True(t, ok)
}
