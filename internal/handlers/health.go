package handlers

import "net/http"

// HealthCheck reports liveness for probes and the reverse proxy.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "peninsula-api",
	})
}
