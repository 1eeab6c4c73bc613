package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/charmbracelet/log"
)

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// decodeAndValidate unmarshals the request body into dst and runs the
// validator. It writes the error response itself and reports success.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		log.Warn("Request failed validation", "error", err)
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// idParam reads a required int64 query parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing parameter: " + name)
	}
	return strconv.ParseInt(raw, 10, 64)
}

// limitParam reads an optional limit query parameter. Absent or unparsable
// values mean no limit.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("Invalid 'limit' parameter provided. Defaulting to all rows.", "limit_param", raw)
		return 0
	}
	return limit
}

// dateRangeParams reads the optional from/to query parameters.
func dateRangeParams(r *http.Request) roster.DateRange {
	return roster.DateRange{
		Start: r.URL.Query().Get("from"),
		End:   r.URL.Query().Get("to"),
	}
}

// storeErrStatus maps store sentinel errors onto HTTP status codes.
func storeErrStatus(err error) int {
	switch {
	case errors.Is(err, roster.ErrPlayerNotFound),
		errors.Is(err, roster.ErrMatchNotFound),
		errors.Is(err, roster.ErrStatNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
