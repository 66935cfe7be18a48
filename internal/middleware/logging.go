package middleware

import (
	"net/http"
	"time"

	"github.com/tutostrucoscode/GymMetrics/pkg"

	log "github.com/sirupsen/logrus"
)

// statusRecorder keeps the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// LogRequest logs every request with its outcome at debug level. Server errors are
// logged as warnings.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			clientIP, err := pkg.ReadUserIP(r)
			if err != nil {
				clientIP = "unknown"
			}
			entry := log.WithFields(log.Fields{
				"method":  r.Method,
				"path":    r.URL.Path,
				"status":  recorder.status,
				"client":  clientIP,
				"elapsed": time.Since(start).String(),
			})
			if recorder.status >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Debug("request served")
		})
	}
}
