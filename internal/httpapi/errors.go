package httpapi

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/social/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "bad_request")
}

// writeServiceErr maps service sentinels onto HTTP statuses. Anything it does
// not recognise is a store fault and is logged before a 500 is returned.
func (s *Server) writeServiceErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errs.ErrConflict):
		writeErr(w, http.StatusConflict, "username already exists", "conflict")
	case errors.Is(err, errs.ErrInvalid):
		writeErr(w, http.StatusBadRequest, err.Error(), "validation_error")
	case errors.Is(err, errs.ErrUnauthorized):
		writeErr(w, http.StatusUnauthorized, "invalid credentials", "unauthorized")
	case errors.Is(err, errs.ErrNotFound):
		// absent targets of writes are client errors on this API
		writeErr(w, http.StatusBadRequest, "message not found", "not_found")
	default:
		s.log.Error("request failed", "req_id", chimw.GetReqID(r.Context()), "err", err)
		writeErr(w, http.StatusInternalServerError, "internal error", "internal")
	}
}
