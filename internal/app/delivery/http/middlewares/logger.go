package middlewares

import (
	"net/http"
	"time"
)

// AccessLog prints one human readable line per request through logrus, in the
// configured timezone. Structured request logs come from Logging.
func (m *Middlewares) AccessLog(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(m.InternalConfig.App.Timezone)
	if err != nil {
		m.Logrus.Printf("Invalid time zone %q, falling back to UTC: %v", m.InternalConfig.App.Timezone, err)
		tz = time.UTC
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Logrus.Printf("%s | %s | %s %s | %d | %s",
			time.Now().In(tz).Format(time.RFC850),
			r.RemoteAddr,
			r.Method,
			r.RequestURI,
			rec.statusCode,
			time.Since(start),
		)
	})
}
