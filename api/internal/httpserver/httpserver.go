package httpserver

import (
	"net/http"

	"go.uber.org/zap"
)

// StartHTTP serves /healthz on addr. ready reports downstream health (the
// session database); a non-nil error turns into a 503.
func StartHTTP(addr string, log *zap.Logger, ready func() error) error {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if ready != nil {
			if err := ready(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("not ok\n" + err.Error()))
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})
	log.Info("health server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, nil)
}
