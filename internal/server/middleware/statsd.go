package middleware

//go:generate mockery --name=StatsDClient -r --case underscore --with-expecter --structname StatsDClient --filename statsd_client.go --output=./mocks
import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goto/gossip/pkg/statsd"
)

type StatsDClient interface {
	Histogram(name string, value float64) *statsd.Metric
}

// StatsD publishes the response time of every request tagged with its route
// pattern, method and status. Server errors are tagged as failures.
func StatsD(statsdReporter StatsDClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if statsdReporter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			metric := statsdReporter.Histogram("responseTime", float64(time.Since(start)/time.Millisecond)).
				Tag("route", routePattern(r)).
				Tag("method", r.Method).
				Tag("status", strconv.Itoa(status))
			if status >= http.StatusInternalServerError {
				metric = metric.Failure(nil)
			} else {
				metric = metric.Success()
			}
			metric.Publish()
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unknown"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unknown"
}
