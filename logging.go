package navbar

import (
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// RequestLogger logs one line per request with method, path, status and duration.
// 5xx responses log at error level and 4xx at warn.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = discardLogger()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			path := r.URL.Path
			if raw := r.URL.RawQuery; raw != "" {
				path += "?" + raw
			}
			entry := logger.WithFields(logrus.Fields{
				"method": r.Method,
				"path":   path,
				"status": status,
				"took":   time.Since(start),
			})
			switch {
			case status >= 500:
				entry.Error("server error")
			case status >= 400:
				entry.Warn("client error")
			default:
				entry.Info("request completed")
			}
		})
	}
}
