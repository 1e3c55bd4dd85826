package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/catalog/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := Middleware(mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "GET /api/v1/catalog/{id}"))

	// Act
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/catalog/17", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/catalog/18", nil))

	// Assert
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "GET /api/v1/catalog/{id}"))
	assert.Equal(t, before+2, after)
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}

func TestRecordCheckout(t *testing.T) {
	before := testutil.ToFloat64(checkoutSubmissions.WithLabelValues("failed"))

	RecordCheckout("failed")

	assert.Equal(t, before+1, testutil.ToFloat64(checkoutSubmissions.WithLabelValues("failed")))
}

func TestRecordCatalogLookup(t *testing.T) {
	before := testutil.ToFloat64(catalogLookups.WithLabelValues("hit"))

	RecordCatalogLookup("hit")

	assert.Equal(t, before+1, testutil.ToFloat64(catalogLookups.WithLabelValues("hit")))
}

func TestHandler(t *testing.T) {
	rr := httptest.NewRecorder()

	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
