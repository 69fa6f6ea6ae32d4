package middleware

import (
	"net/http"
	"runtime/debug"

	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	pnet "langid/internal/platform/net"
	phttp "langid/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			err := perr.PanicErrf("panic recovered")
			status := perr.HTTPStatus(err)
			phttp.JSON(w, status, phttp.Envelope{
				StatusCode: status,
				Status:     http.StatusText(status),
				Code:       perr.ErrorCodePanic,
				Error:      err.Error(),
				RequestID:  reqID,
			})
		}()
		next.ServeHTTP(w, r)
	})
}
