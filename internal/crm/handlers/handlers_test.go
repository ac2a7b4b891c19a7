package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/models"
)

// MockIndustryController implements IndustryController for testing
type MockIndustryController struct {
	create  func(context.Context, *models.IndustryCandidate) (*models.Industry, error)
	update  func(context.Context, uuid.UUID, *models.IndustryCandidate) (*models.Industry, error)
	delete  func(context.Context, uuid.UUID) error
	getByID func(context.Context, uuid.UUID) (*models.Industry, error)
	list    func(context.Context) ([]models.Industry, error)
}

func (m *MockIndustryController) Create(ctx context.Context, candidate *models.IndustryCandidate) (*models.Industry, error) {
	return m.create(ctx, candidate)
}

func (m *MockIndustryController) Update(ctx context.Context, id uuid.UUID, candidate *models.IndustryCandidate) (*models.Industry, error) {
	return m.update(ctx, id, candidate)
}

func (m *MockIndustryController) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

func (m *MockIndustryController) GetByID(ctx context.Context, id uuid.UUID) (*models.Industry, error) {
	return m.getByID(ctx, id)
}

func (m *MockIndustryController) List(ctx context.Context) ([]models.Industry, error) {
	return m.list(ctx)
}

func industryRouter(t *testing.T, controller IndustryController) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewIndustryHandler(controller, zaptest.NewLogger(t)).Register(r.Group("/api"))
	return r
}

func TestIndustryHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		create     func(context.Context, *models.IndustryCandidate) (*models.Industry, error)
		wantStatus int
		wantField  string
	}{
		{
			name: "created",
			body: `{"name":"Finance"}`,
			create: func(_ context.Context, candidate *models.IndustryCandidate) (*models.Industry, error) {
				return &models.Industry{ID: uuid.New(), Name: candidate.Name}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate name",
			body: `{"name":"Finance"}`,
			create: func(context.Context, *models.IndustryCandidate) (*models.Industry, error) {
				return nil, e.Duplicate("name", "Finance")
			},
			wantStatus: http.StatusConflict,
			wantField:  "name",
		},
		{
			name: "validation failure",
			body: `{"name":""}`,
			create: func(context.Context, *models.IndustryCandidate) (*models.Industry, error) {
				return nil, e.Validation("name", "industry name is required")
			},
			wantStatus: http.StatusBadRequest,
			wantField:  "name",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "internal error is not leaked",
			body: `{"name":"Finance"}`,
			create: func(context.Context, *models.IndustryCandidate) (*models.Industry, error) {
				return nil, assert.AnError
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := industryRouter(t, &MockIndustryController{create: tt.create})

			req := httptest.NewRequest(http.MethodPost, "/api/industries", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantField, body["field"])
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestIndustryHandler_Get(t *testing.T) {
	industryID := uuid.New()
	controller := &MockIndustryController{
		getByID: func(_ context.Context, id uuid.UUID) (*models.Industry, error) {
			if id == industryID {
				return &models.Industry{ID: industryID, Name: "Finance"}, nil
			}
			return nil, e.ErrNotFound
		},
	}
	router := industryRouter(t, controller)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/industries/"+industryID.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		var industry models.Industry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &industry))
		assert.Equal(t, "Finance", industry.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/industries/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/industries/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIndustryHandler_Update(t *testing.T) {
	industryID := uuid.New()
	controller := &MockIndustryController{
		update: func(_ context.Context, id uuid.UUID, candidate *models.IndustryCandidate) (*models.Industry, error) {
			if id != industryID {
				return nil, e.ErrNotFound
			}
			return &models.Industry{ID: id, Name: candidate.Name}, nil
		},
	}
	router := industryRouter(t, controller)

	t.Run("updated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/industries/"+industryID.String(), bytes.NewBufferString(`{"name":"FinTech"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var industry models.Industry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &industry))
		assert.Equal(t, industryID, industry.ID)
		assert.Equal(t, "FinTech", industry.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/industries/"+uuid.NewString(), bytes.NewBufferString(`{"name":"FinTech"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIndustryHandler_Delete(t *testing.T) {
	industryID := uuid.New()
	controller := &MockIndustryController{
		delete: func(_ context.Context, id uuid.UUID) error {
			if id != industryID {
				return e.ErrNotFound
			}
			return nil
		},
	}
	router := industryRouter(t, controller)

	t.Run("deleted", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/industries/"+industryID.String(), nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/industries/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIndustryHandler_List(t *testing.T) {
	controller := &MockIndustryController{
		list: func(context.Context) ([]models.Industry, error) {
			return []models.Industry{{ID: uuid.New(), Name: "Finance"}}, nil
		},
	}
	router := industryRouter(t, controller)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/industries", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var industries []models.Industry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &industries))
	assert.Len(t, industries, 1)
}
