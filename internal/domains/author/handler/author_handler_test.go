package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/domains/author"
	"recipe-backend/internal/shared/response"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*author.Author)
	return a, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*author.Author)
	return a, args.Error(1)
}

func (m *mockService) List(ctx context.Context) ([]author.Author, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).([]author.Author)
	return a, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	args := m.Called(ctx, id, req)
	a, _ := args.Get(0).(*author.Author)
	return a, args.Error(1)
}

func (m *mockService) DeleteCascade(ctx context.Context, id uuid.UUID) (*author.CascadeResult, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*author.CascadeResult)
	return r, args.Error(1)
}

func newRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	r := gin.New()
	r.POST("/authors", h.Create)
	r.GET("/authors", h.List)
	r.GET("/authors/:id", h.GetByID)
	r.PUT("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func serve(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestDelete_NoContent(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()
	svc.On("DeleteCascade", mock.Anything, id).
		Return(&author.CascadeResult{AuthorID: id, State: author.CascadeCommitted}, nil)

	w, _ := serve(newRouter(svc), http.MethodDelete, "/authors/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
	svc.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()
	svc.On("DeleteCascade", mock.Anything, id).
		Return(&author.CascadeResult{AuthorID: id, State: author.CascadeRejected}, author.ErrAuthorNotFound)

	w, resp := serve(newRouter(svc), http.MethodDelete, "/authors/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "AUTHOR_NOT_FOUND", resp.Error.Code)
}

func TestDelete_FailureDoesNotLeakCause(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()
	cause := fmt.Errorf("%w: %v", author.ErrCascadeFailed, errors.New("pq: relation secret_table does not exist"))
	svc.On("DeleteCascade", mock.Anything, id).
		Return(&author.CascadeResult{AuthorID: id, State: author.CascadeRejected}, cause)

	w, resp := serve(newRouter(svc), http.MethodDelete, "/authors/"+id.String(), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CASCADE_FAILED", resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "secret_table")
}

func TestDelete_InvalidID(t *testing.T) {
	svc := new(mockService)

	w, _ := serve(newRouter(svc), http.MethodDelete, "/authors/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
}

func TestCreate(t *testing.T) {
	svc := new(mockService)
	created := &author.Author{ID: uuid.New(), Name: "Gordon Ramsay"}
	svc.On("Create", mock.Anything, &author.CreateAuthorRequest{Name: "Gordon Ramsay"}).Return(created, nil)

	w, resp := serve(newRouter(svc), http.MethodPost, "/authors", `{"name":"Gordon Ramsay"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), created.ID.String())
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"name":`, http.StatusBadRequest},
		{"missing name", `{}`, http.StatusBadRequest},
		{"name too long", `{"name":"` + strings.Repeat("a", author.MaxNameLength+1) + `"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)

			w, resp := serve(newRouter(svc), http.MethodPost, "/authors", tt.body)

			assert.Equal(t, tt.want, w.Code)
			assert.False(t, resp.Success)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestList(t *testing.T) {
	svc := new(mockService)
	svc.On("List", mock.Anything).Return([]author.Author{{ID: uuid.New(), Name: "A"}, {ID: uuid.New(), Name: "B"}}, nil)

	w, resp := serve(newRouter(svc), http.MethodGet, "/authors", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, author.ErrAuthorNotFound)

	w, _ := serve(newRouter(svc), http.MethodGet, "/authors/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
