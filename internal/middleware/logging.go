package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// LogRequest traces every request with its matched route name.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if log.IsLevelEnabled(log.TraceLevel) {
				log.WithFields(log.Fields{
					"method": r.Method,
					"route":  routeName(r),
					"path":   r.URL.Path,
					"origin": r.Header.Get("Origin"),
				}).Trace("request")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routeName is the mux route name, falling back to the path template.
func routeName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return "unknown"
	}
	if name := route.GetName(); name != "" {
		return name
	}
	if tpl, err := route.GetPathTemplate(); err == nil {
		return tpl
	}
	return "unknown"
}
