package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

// auditLogMiddleware captures every mutating-surface request for the audit
// trail. The liveness and metrics routes are skipped.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
			ParcelID:  parcelIDFromPath(r.URL.Path),
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func parcelIDFromPath(path string) string {
	if !strings.HasPrefix(path, "/parcels/") {
		return ""
	}
	rest := strings.TrimPrefix(path, "/parcels/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func handlerName(path string, method string) string {
	switch {
	case path == "/parcels" && method == http.MethodPost:
		return "handleCreateParcel"
	case path == "/parcels" && method == http.MethodGet:
		return "handleListParcels"
	case strings.HasPrefix(path, "/parcels/") && strings.HasSuffix(path, "/tracking"):
		return "handleParcelTracking"
	case strings.HasPrefix(path, "/parcels/") && method == http.MethodGet:
		return "handleGetParcel"
	case strings.HasPrefix(path, "/parcels/") && method == http.MethodDelete:
		return "handleDeleteParcel"
	case path == "/create-checkout-session":
		return "handleCreateCheckoutSession"
	case path == "/payment":
		return "handleConfirmPayment"
	case path == "/session-status":
		return "handleSessionStatus"
	case path == "/payments":
		return "handleListPayments"
	case path == "/tracking":
		return "handleRecordTracking"
	}
	return "unknown"
}
