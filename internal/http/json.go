package httpx

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps request bodies; auth and quiz payloads are tiny.
const maxBodyBytes = 1 << 20

// DecodeJSON reads the request body into dst, rejecting unknown fields and
// bodies over maxBodyBytes. On failure it writes a 400 and returns false, so
// handlers can bail with a bare return.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "malformed_body", Err: err})
		return false
	}
	return true
}

// WriteJSON marshals v and writes it with the given status. Marshal failures
// become a plain 500 since the intended payload cannot be sent.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// A write failure here means the client is gone; nothing left to do.
	_, _ = w.Write(body)
}

// ErrorParams describes a JSON error response: the HTTP status, a stable
// machine-readable code, and the error whose message goes to the client.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError renders p as {"error": code, "message": text}.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}
