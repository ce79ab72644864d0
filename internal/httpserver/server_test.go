package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/estofados/outlet/internal/config"
	"github.com/estofados/outlet/internal/es"
	"github.com/estofados/outlet/internal/hash"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/repo"
	"github.com/estofados/outlet/internal/service"
	"github.com/estofados/outlet/internal/tokens"
)

var testSecret = []byte("httpserver-test-secret")

type testServer struct {
	Echo *echo.Echo
	Repo *repo.GormRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))

	gormRepo := &repo.GormRepo{DB: db}
	auth := &service.AuthService{Repo: gormRepo, JWTSecret: testSecret, TokenTTL: 30 * time.Minute}

	e := echo.New()
	Register(e, &Deps{
		AuthService:    auth,
		AuthHandler:    &AuthHandler{Svc: auth},
		CatalogHandler: &CatalogHandler{Svc: &service.CatalogService{Repo: gormRepo}},
		CartHandler:    &CartHandler{Svc: &service.CartService{Repo: gormRepo}},
		ReviewHandler:  &ReviewHandler{Svc: &service.ReviewService{Repo: gormRepo, Limit: 10}},
		SearchHandler:  &SearchHandler{Index: es.ProductIndex},
	})

	return &testServer{Echo: e, Repo: gormRepo}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// registerUser goes through the public endpoint and returns the issued token.
func (ts *testServer) registerUser(t *testing.T, email string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Cliente Teste",
		"email":    email,
		"password": "senha-secreta",
		"phone":    "(11) 99999-0000",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["access_token"].(string)
}

// adminToken seeds an admin straight into the store; there is no public
// path to the admin flag.
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	h, err := hash.HashPassword("admin-senha")
	require.NoError(t, err)

	admin := models.User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        "admin@example.com",
		Phone:        "(11) 90000-0000",
		PasswordHash: h,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, ts.Repo.CreateUser(context.Background(), &admin))

	token, err := tokens.Sign(admin.ID, 30*time.Minute, testSecret)
	require.NoError(t, err)
	return token
}

func (ts *testServer) seedCatalog(t *testing.T, price float64) (categoryID, productID string) {
	t.Helper()

	category := models.Category{
		ID:        uuid.NewString(),
		Name:      "Sofás",
		Slug:      "sofas",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, ts.Repo.CreateCategory(context.Background(), &category))

	product := models.Product{
		ID:           uuid.NewString(),
		Name:         "Sofá Teste",
		Description:  "Sofá de teste",
		Price:        price,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		InStock:      true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, ts.Repo.CreateProduct(context.Background(), &product))
	return category.ID, product.ID
}
