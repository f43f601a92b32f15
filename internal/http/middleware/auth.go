package middlewarex

import (
	"crypto/subtle"
	"net/http"

	"shopconsole/internal/config"
)

// AdminAuth requires X-Admin-Token to match the configured token. When no
// token is configured the console is open.
func AdminAuth(cfg config.Cfg) func(http.Handler) http.Handler {
	want := []byte(cfg.Sec.AdminToken)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(want) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			got := []byte(r.Header.Get("X-Admin-Token"))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
