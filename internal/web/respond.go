package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cheeh1/parkaccess-urban-reserve-sub000/internal/backend"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the toast-shaped error payload the frontend shows.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeBackendError surfaces the server's own message and status when
// the failure came from the platform API, and a 502 otherwise.
func writeBackendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		writeError(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	writeError(w, http.StatusBadGateway, err.Error())
}
