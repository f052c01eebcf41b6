package httputil

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ObserveFunc receives one finished request.
type ObserveFunc func(method, route string, status int, d time.Duration)

// Observe calls fn after every request with the matched chi route pattern.
// Unmatched requests report the route "unmatched" so label cardinality
// stays bounded.
func Observe(fn ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fn(r.Method, route, status, time.Since(start))
		})
	}
}
