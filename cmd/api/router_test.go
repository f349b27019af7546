package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/config"
	"recipe-backend/pkg/container"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total int `json:"total"`
	} `json:"meta"`
}

type entity struct {
	ID string `json:"id"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "Recipe API", Environment: "test", Port: "0"},
		Store: config.StoreConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "api.db"),
		},
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
	}

	c, err := container.NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	return SetupRouter(c)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w.Code, env
}

func createID(t *testing.T, r *gin.Engine, path, body string) string {
	t.Helper()

	code, env := do(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, code, "POST %s", path)

	var e entity
	require.NoError(t, json.Unmarshal(env.Data, &e))
	require.NotEmpty(t, e.ID)
	return e.ID
}

func searchIDs(t *testing.T, r *gin.Engine, query string) []string {
	t.Helper()

	code, env := do(t, r, http.MethodGet, "/api/v1/recipes/search?"+query, "")
	require.Equal(t, http.StatusOK, code)

	var found []entity
	require.NoError(t, json.Unmarshal(env.Data, &found))
	ids := make([]string, 0, len(found))
	for _, e := range found {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestAPI_CatalogLifecycle(t *testing.T) {
	r := newTestRouter(t)

	authorID := createID(t, r, "/api/v1/authors", `{"name":"Gordon Ramsay"}`)
	recipeID := createID(t, r, "/api/v1/recipes", `{
		"title": "Beef Wellington",
		"description": "A British classic",
		"instructions": "Wrap in pastry",
		"author_id": "`+authorID+`"
	}`)
	ingredientID := createID(t, r, "/api/v1/recipes/"+recipeID+"/ingredients",
		`{"name":"Mushroom Duxelles","quantity":"0.5","unit":"kg"}`)

	assert.Equal(t, []string{recipeID}, searchIDs(t, r, "keywords=beef&keywords=gordon"))
	assert.Equal(t, []string{recipeID}, searchIDs(t, r, "keywords=mushroom,british"))
	assert.Equal(t, []string{recipeID}, searchIDs(t, r, "keywords=Beef"))
	assert.Empty(t, searchIDs(t, r, "keywords=pizza"))
	assert.Empty(t, searchIDs(t, r, "keywords=%20"))
	assert.Empty(t, searchIDs(t, r, ""))

	code, env := do(t, r, http.MethodGet, "/api/v1/authors/"+authorID+"/recipes", "")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)

	code, _ = do(t, r, http.MethodDelete, "/api/v1/authors/"+authorID, "")
	assert.Equal(t, http.StatusNoContent, code)

	code, env = do(t, r, http.MethodGet, "/api/v1/recipes/"+recipeID, "")
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RECIPE_NOT_FOUND", env.Error.Code)

	code, _ = do(t, r, http.MethodGet, "/api/v1/recipes/"+recipeID+"/ingredients/"+ingredientID, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, r, http.MethodDelete, "/api/v1/authors/"+authorID, "")
	assert.Equal(t, http.StatusNotFound, code)

	assert.Empty(t, searchIDs(t, r, "keywords=beef"))
}

func TestAPI_RejectsNegativeQuantity(t *testing.T) {
	r := newTestRouter(t)
	recipeID := createID(t, r, "/api/v1/recipes", `{"title":"Bread"}`)

	code, env := do(t, r, http.MethodPost, "/api/v1/recipes/"+recipeID+"/ingredients",
		`{"name":"Flour","quantity":-5.0}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)

	ingredientID := createID(t, r, "/api/v1/recipes/"+recipeID+"/ingredients",
		`{"name":"Flour","quantity":0}`)

	code, _ = do(t, r, http.MethodPut, "/api/v1/recipes/"+recipeID+"/ingredients/"+ingredientID,
		`{"name":"Flour","quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, r, http.MethodPut, "/api/v1/recipes/"+recipeID+"/ingredients/"+ingredientID,
		`{"name":"Flour","quantity":5.0}`)
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodGet, "/api/v1/recipes/"+recipeID+"/ingredients", "")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)
}

func TestAPI_InvalidIdentifiers(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/authors/nope",
		"/api/v1/recipes/nope",
		"/api/v1/recipes/nope/ingredients",
	} {
		code, _ := do(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, code, path)
	}

	code, _ := do(t, r, http.MethodDelete, "/api/v1/authors/nope", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAPI_UnknownAuthorReference(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/recipes",
		`{"title":"Ghost Pie","author_id":"00000000-0000-0000-0000-000000000001"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_AUTHOR_REFERENCE", env.Error.Code)
}

func TestAPI_Metrics(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, http.MethodGet, "/api/v1/authors", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipe_http_requests_total")
}

func TestAPI_RequestIDHeader(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
