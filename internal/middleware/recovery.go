package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/mslepko/simple-workouts-tracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf(
						"http: panic serving %s [route: %s]: %v\n%s",
						req.URL.Path, routeName(req), r, debug.Stack(),
					)
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
				}
			}()

			// handler call
			next.ServeHTTP(respWriter, req)
		})
	}
}

// routeName resolves the name given to the matched route via .Name(...),
// "unknown" when the request did not come through the router.
func routeName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return "unknown"
	}
	if name := route.GetName(); name != "" {
		return name
	}
	return "unknown"
}
