package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/newsroom-backend/pkg/ctxutil"
)

// ShareTokenHeader carries the share token of an unpublished article.
const ShareTokenHeader = "X-Share-Token"

// ShareToken stores the presented share token in the request context. The
// header wins over the "share" query parameter.
func ShareToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(ShareTokenHeader))
		if token == "" {
			token = strings.TrimSpace(r.URL.Query().Get("share"))
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithShareToken(r.Context(), token)))
	})
}
