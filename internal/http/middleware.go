package http

import (
	"fmt"
	"net/http"
)

// withCORS wires permissive CORS headers. The faucet is a public testnet
// API, so any origin may call it.
func (s *Server) withCORS(policy corsPolicy, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if policy.allowMethods != "" {
			w.Header().Set("Access-Control-Allow-Methods", policy.allowMethods)
		}
		if policy.allowHeaders != "" {
			w.Header().Set("Access-Control-Allow-Headers", policy.allowHeaders)
		} else if reqHdrs := r.Header.Get("Access-Control-Request-Headers"); reqHdrs != "" {
			w.Header().Set("Access-Control-Allow-Headers", reqHdrs)
		}
		if policy.maxAge > 0 {
			w.Header().Set("Access-Control-Max-Age", fmt.Sprintf("%d", policy.maxAge))
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func (s *Server) withMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		next(w, r)
	}
}
