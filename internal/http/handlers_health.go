package httpx

import "net/http"

// healthHandler answers liveness probes. It reports nothing beyond process
// identity; database and Redis reachability surface through request errors.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "firequiz",
	})
}
