package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"budget-server/src/ledger"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func idURLParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseDateField parses an optional calendar-date field from a request
// payload. Empty means absent.
func parseDateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(ledger.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
