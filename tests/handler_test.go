package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alanalzi/jalin-alam-project/internal/handler"
	"github.com/alanalzi/jalin-alam-project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customerRouter wires the customers handler onto a bare gin engine, the
// same route shapes the real router registers.
func customerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewCustomersHandler(service.NewCustomerService(newStubCustomerRepo()))

	r := gin.New()
	r.GET("/api/customers", h.List)
	r.GET("/api/customers/:id", h.Get)
	r.POST("/api/customers", h.Create)
	r.PUT("/api/customers/:id", h.Update)
	r.DELETE("/api/customers/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerEndpoints(t *testing.T) {
	r := customerRouter()

	// Create returns 201 with the new id.
	w := doJSON(t, r, http.MethodPost, "/api/customers", `{"name":"Agus","email":"agus@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Customer added successfully", created.Message)
	assert.NotZero(t, created.ID)

	// The list includes it.
	w = doJSON(t, r, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Agus", list[0]["name"])

	// Update and delete round out the lifecycle.
	w = doJSON(t, r, http.MethodPut, "/api/customers/1", `{"phone":"+62 811 2222"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/customers/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customers/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorEnvelope(t *testing.T) {
	r := customerRouter()

	// 404 carries the {message} envelope without an error field.
	w := doJSON(t, r, http.MethodGet, "/api/customers/42", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Customer not found", envelope["message"])
	assert.NotContains(t, envelope, "error")

	// Missing required field fails validation with a 400.
	w = doJSON(t, r, http.MethodPost, "/api/customers", `{"email":"x@example.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["message"], "Name")

	// Malformed JSON also maps to 400.
	w = doJSON(t, r, http.MethodPost, "/api/customers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedIDRejected(t *testing.T) {
	r := customerRouter()

	for _, path := range []string{"/api/customers/abc", "/api/customers/0", "/api/customers/-1"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
