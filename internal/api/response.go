package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anselboero/cloud-functions/internal/config"
)

const (
	codeInvalidRequest = "invalid_request"
	codeUpstream       = "upstream_error"
	codeMalformedRow   = "malformed_row"
	codeMisconfigured  = "misconfigured"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	body, err := json.Marshal(errorResponse{Error: code, Message: message})
	if err != nil {
		http.Error(w, message, status)
		return
	}

	writeJSON(w, status, body)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func setCORS(w http.ResponseWriter, cors config.CORS) {
	w.Header().Set("Access-Control-Allow-Origin", cors.AllowOrigin)
	w.Header().Set("Access-Control-Allow-Methods", cors.AllowMethods)
	w.Header().Set("Access-Control-Allow-Headers", cors.AllowHeaders)
}

// allow answers OPTIONS preflights and rejects any method other than 'method'. It returns
// false if the request has been answered.
func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	switch r.Method {
	case method:
		return true

	case http.MethodOptions:
		w.Header().Set("Allow", method+", "+http.MethodOptions)
		w.WriteHeader(http.StatusNoContent)
		return false

	default:
		w.Header().Set("Allow", method+", "+http.MethodOptions)
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method "+r.Method+" not allowed")
		return false
	}
}

// Misconfigured answers every request with a 500 describing why the function could not be
// set up.
func Misconfigured(err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invocation(r.Context()).warnf("%v", err)
		writeError(w, http.StatusInternalServerError, codeMisconfigured, err.Error())
	})
}
