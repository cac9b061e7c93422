package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meera-nair/student-records-api/internal/http/handlers/health"
)

func TestHealth(t *testing.T) {
	handler := health.New("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"running","version":"1.0.0"}`, rec.Body.String())
}
