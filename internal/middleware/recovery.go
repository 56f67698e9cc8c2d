package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 and counts it.
// http.ErrAbortHandler is re-raised so the server still drops the connection.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				log.WithFields(log.Fields{
					"method": r.Method,
					"route":  routeName(r),
					"path":   r.URL.Path,
				}).Errorf("panic serving request: %v\n%s", rec, debug.Stack())

				panicErr := fmt.Errorf("panic: %v", rec)
				http.Error(w, errs.ErrorMessage(panicErr), errs.HTTPStatus(panicErr))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
