package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-contact-form/config"
	_ "go-contact-form/docs"
	"go-contact-form/internal/contactform"
	"go-contact-form/internal/delivery/http/middleware"
	v1 "go-contact-form/internal/delivery/http/v1"
	"go-contact-form/internal/repository/memory"
	"go-contact-form/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	r := newTestRouter()
	serve(t, r, http.MethodPost, "/v1/forms", "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "System operational", resp.Message)
	assert.Equal(t, "ok", resp.Data["status"])
	assert.Equal(t, "1", resp.Data["active_forms"])
}

func TestSwaggerDoc(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/forms/{id}/submit")
}

func TestRouterRateLimitsFormRoutes(t *testing.T) {
	repo := memory.NewFormRepository(100, time.Hour)
	r := v1.NewRouter(v1.RouterDeps{
		ContactUC:   usecase.NewContactFormUsecase(repo, contactform.DefaultValidator()),
		RateLimiter: middleware.NewRateLimiter(middleware.RateLimitConfig{RPS: 0.1, Burst: 1}),
		Config:      &config.Config{},
	})

	w, _ := serve(t, r, http.MethodPost, "/v1/forms", "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = serve(t, r, http.MethodPost, "/v1/forms", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Health is never limited
	w, _ = serve(t, r, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
