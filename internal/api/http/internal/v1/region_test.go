package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nzwalks/backend/internal/config"
	"github.com/nzwalks/backend/internal/domain"
	"github.com/nzwalks/backend/internal/repository"
	"github.com/nzwalks/backend/internal/service"
	"github.com/nzwalks/backend/pkg/auth"
	appvalidator "github.com/nzwalks/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router  *gin.Engine
	manager *auth.Manager
	repos   *repository.Repositories
}

func newTestAPI(t *testing.T, repos *repository.Repositories) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	appvalidator.RegisterGinValidator()

	manager, err := auth.NewManager(config.JWTConfig{SigningKey: "test-key", AccessTokenTTL: time.Minute, Issuer: "nzwalks"})
	require.NoError(t, err)

	services := service.NewServices(service.Deps{Repos: repos})
	router := gin.New()
	NewHandler(services, manager).Init(router.Group("/api"))

	return &testAPI{router: router, manager: manager, repos: repos}
}

func (a *testAPI) token(t *testing.T, roles ...string) string {
	t.Helper()
	token, _, err := a.manager.NewJWT("tester", roles)
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeRegion(t *testing.T, rec *httptest.ResponseRecorder) regionResponse {
	t.Helper()
	var out regionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func regionCount(t *testing.T, repos *repository.Repositories) int {
	t.Helper()
	all, err := repos.Regions.GetAll(context.Background())
	require.NoError(t, err)
	return len(all)
}

func TestRegions_Lifecycle(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	token := api.token(t, "Reader", "Writer")

	rec := api.do(t, http.MethodPost, "/api/regions", token, map[string]any{"code": "AUK", "name": "Auckland"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeRegion(t, rec)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "AUK", created.Code)
	assert.Equal(t, "Auckland", created.Name)
	assert.Nil(t, created.RegionImageURL)
	assert.Equal(t, "/api/regions/"+created.ID.String(), rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"regionImageUrl":null`)

	rec = api.do(t, http.MethodGet, "/api/regions/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeRegion(t, rec))

	rec = api.do(t, http.MethodPut, "/api/regions/"+created.ID.String(), token, map[string]any{"code": "AUK", "name": "Auckland Region"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeRegion(t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Auckland Region", updated.Name)

	rec = api.do(t, http.MethodDelete, "/api/regions/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeRegion(t, rec))

	rec = api.do(t, http.MethodGet, "/api/regions/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRegions_GetAll(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	reader := api.token(t, "Reader")
	writer := api.token(t, "Writer")

	rec := api.do(t, http.MethodGet, "/api/regions", reader, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	img := "https://images.example/wgn.jpg"
	for _, body := range []map[string]any{
		{"code": "WGN", "name": "Wellington", "regionImageUrl": img},
		{"code": "AKL", "name": "Auckland"},
	} {
		require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/regions", writer, body).Code)
	}

	rec = api.do(t, http.MethodGet, "/api/regions", reader, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []regionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Auckland", list[0].Name)
	assert.Equal(t, "Wellington", list[1].Name)
	require.NotNil(t, list[1].RegionImageURL)
	assert.Equal(t, img, *list[1].RegionImageURL)
}

func TestRegions_NotFound(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	token := api.token(t, "Reader", "Writer")
	missing := "/api/regions/" + uuid.NewString()

	tests := []struct {
		name   string
		method string
		target string
		body   any
	}{
		{"get unknown id", http.MethodGet, missing, nil},
		{"update unknown id", http.MethodPut, missing, map[string]any{"code": "AUK", "name": "Auckland"}},
		{"delete unknown id", http.MethodDelete, missing, nil},
		{"get non uuid id", http.MethodGet, "/api/regions/not-a-uuid", nil},
		{"delete non uuid id", http.MethodDelete, "/api/regions/42", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, tt.method, tt.target, token, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
	assert.Zero(t, regionCount(t, api.repos))
}

func TestRegions_CreateValidation(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	writer := api.token(t, "Writer")

	tests := []struct {
		name    string
		body    any
		field   string
		message string
	}{
		{"code too short", map[string]any{"code": "AU", "name": "Auckland"}, "code", "Code has to be a minimum 3 characters"},
		{"code too long", map[string]any{"code": "AUCK", "name": "Auckland"}, "code", "Code has to be a maximum 3 characters"},
		{"code missing", map[string]any{"name": "Auckland"}, "code", "Code is required"},
		{"code blank", map[string]any{"code": "   ", "name": "Auckland"}, "code", "Code must not be blank"},
		{"name missing", map[string]any{"code": "AUK"}, "name", "Name is required"},
		{"name blank", map[string]any{"code": "AUK", "name": "   "}, "name", "Name must not be blank"},
		{"name too long", map[string]any{"code": "AUK", "name": strings.Repeat("a", 101)}, "name", "Name has to be a maximum 100 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/regions", writer, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var out ValidationErrorStruct
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, ValidationErrorCode, out.ErrorCode)
			require.Len(t, out.Errors, 1)
			assert.Equal(t, tt.field, out.Errors[0].FieldKey)
			assert.Equal(t, tt.message, out.Errors[0].ErrorMessage)
		})
	}
	assert.Zero(t, regionCount(t, api.repos))

	rec := api.do(t, http.MethodPost, "/api/regions", writer, map[string]any{"code": "AUK", "name": strings.Repeat("a", 100)})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, regionCount(t, api.repos))
}

func TestRegions_MalformedBody(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	writer := api.token(t, "Writer")

	rec := api.do(t, http.MethodPost, "/api/regions", writer, `{"code":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error_code":6001,"error_message":"malformed request body"}`, rec.Body.String())
}

func TestRegions_UpdateValidationLeavesRecord(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	token := api.token(t, "Reader", "Writer")

	rec := api.do(t, http.MethodPost, "/api/regions", token, map[string]any{"code": "NSN", "name": "Nelson"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeRegion(t, rec)

	rec = api.do(t, http.MethodPut, "/api/regions/"+created.ID.String(), token, map[string]any{"code": "N", "name": "Nelson"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/regions/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeRegion(t, rec))
}

func TestRegions_Authorization(t *testing.T) {
	api := newTestAPI(t, repository.NewMemoryRepositories())
	reader := api.token(t, "Reader")
	writer := api.token(t, "Writer")
	target := "/api/regions/" + uuid.NewString()
	body := map[string]any{"code": "AUK", "name": "Auckland"}

	expiredManager, err := auth.NewManager(config.JWTConfig{SigningKey: "test-key", AccessTokenTTL: -time.Minute, Issuer: "nzwalks"})
	require.NoError(t, err)
	expired, _, err := expiredManager.NewJWT("tester", []string{"Reader", "Writer"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		header string
		want   int
	}{
		{"list without token", http.MethodGet, "/api/regions", "", "", http.StatusUnauthorized},
		{"list with expired token", http.MethodGet, "/api/regions", expired, "", http.StatusUnauthorized},
		{"list with basic auth", http.MethodGet, "/api/regions", "", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"list with garbage token", http.MethodGet, "/api/regions", "garbage", "", http.StatusUnauthorized},
		{"list as writer", http.MethodGet, "/api/regions", writer, "", http.StatusForbidden},
		{"get as writer", http.MethodGet, target, writer, "", http.StatusForbidden},
		{"create as reader", http.MethodPost, "/api/regions", reader, "", http.StatusForbidden},
		{"update as reader", http.MethodPut, target, reader, "", http.StatusForbidden},
		{"delete as reader", http.MethodDelete, target, reader, "", http.StatusForbidden},
		{"delete without token", http.MethodDelete, target, "", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(mustJSON(t, body)))
			req.Header.Set("Content-Type", "application/json")
			switch {
			case tt.header != "":
				req.Header.Set("Authorization", tt.header)
			case tt.token != "":
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			api.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
	assert.Zero(t, regionCount(t, api.repos))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

type failingRegions struct{}

var errStore = errors.New("dial tcp 10.0.0.5:3306: connection refused")

func (failingRegions) GetAll(context.Context) ([]domain.Region, error) { return nil, errStore }
func (failingRegions) GetOneByID(context.Context, uuid.UUID) (*domain.Region, error) {
	return nil, errStore
}
func (failingRegions) Create(context.Context, *domain.Region) (*domain.Region, error) {
	return nil, errStore
}
func (failingRegions) Update(context.Context, uuid.UUID, *domain.Region) (*domain.Region, error) {
	return nil, errStore
}
func (failingRegions) Delete(context.Context, uuid.UUID) (*domain.Region, error) {
	return nil, errStore
}

func TestRegions_StoreErrorHidesDetail(t *testing.T) {
	api := newTestAPI(t, &repository.Repositories{Regions: failingRegions{}})
	token := api.token(t, "Reader", "Writer")
	target := "/api/regions/" + uuid.NewString()
	body := map[string]any{"code": "AUK", "name": "Auckland"}

	for _, req := range []struct {
		method, target string
		body           any
	}{
		{http.MethodGet, "/api/regions", nil},
		{http.MethodGet, target, nil},
		{http.MethodPost, "/api/regions", body},
		{http.MethodPut, target, body},
		{http.MethodDelete, target, nil},
	} {
		rec := api.do(t, req.method, req.target, token, req.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, req.method+" "+req.target)
		assert.JSONEq(t, `{"error_code":0,"error_message":"unknown error"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	}
}
