package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCache(t *testing.T) {
	before := testutil.ToFloat64(CacheEvents.WithLabelValues("search", "hit"))
	ObserveCache("search", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheEvents.WithLabelValues("search", "hit")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	reg := InitRegistry()
	ObserveHTTP("/api/hotels/search", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	ObserveHotel("submitted")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hulu_http_requests_total")
	assert.Contains(t, rec.Body.String(), "hulu_hotel_lifecycle_events_total")
}
