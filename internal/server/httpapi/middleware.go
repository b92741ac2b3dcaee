package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mbelyaev/taskkeeper/internal/common"
)

type ctxKey string

const accountIDKey ctxKey = "account_id"

// AccountIDFromContext returns the authenticated account id placed into the
// request context by the access guard. The second return is false only for
// requests that never passed the guard.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// requireAuth guards a handler with bearer-token verification. A missing,
// malformed, expired or otherwise invalid token yields the same 401 body;
// the reason is only logged.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthHeaderName)
		if header == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token, found := strings.CutPrefix(header, common.BearerPrefix)
		if !found || token == "" {
			s.logger.Debug(r.Context(), "auth header without bearer scheme")
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		accountID, err := s.auth.VerifyToken(token)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				s.logger.Debug(r.Context(), "rejected expired token")
			} else {
				s.logger.Debug(r.Context(), "rejected invalid token")
			}
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
