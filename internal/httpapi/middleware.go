package httpapi

import (
	"context"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tinoosan/social/internal/social"
)

type ctxKey string

const (
	ctxKeyRegister     ctxKey = "validatedRegister"
	ctxKeyLogin        ctxKey = "validatedLogin"
	ctxKeyPostMessage  ctxKey = "validatedPostMessage"
	ctxKeyPatchMessage ctxKey = "validatedPatchMessage"
	ctxKeyMessageID    ctxKey = "validatedMessageID"
	ctxKeyAccountID    ctxKey = "validatedAccountID"
)

// validateRegister decodes the POST /register body into a candidate account.
// Field rules are left to the account service so a duplicate username is
// reported before a short password.
func (s *Server) validateRegister() func(http.Handler) http.Handler {
	return decodeAccount(ctxKeyRegister)
}

// validateLogin decodes the POST /login body into credentials.
func (s *Server) validateLogin() func(http.Handler) http.Handler {
	return decodeAccount(ctxKeyLogin)
}

func decodeAccount(key ctxKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req accountRequest
			if err := decodeJSON(r, &req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), key, toAccountDomain(req))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePostMessage decodes the POST /messages body into a candidate message.
func (s *Server) validatePostMessage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req messageRequest
			if err := decodeJSON(r, &req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostMessage, toMessageDomain(req))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePatchMessage decodes the PATCH /messages/{message_id} body. Only
// messageText is read.
func (s *Server) validatePatchMessage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req patchMessageRequest
			if err := decodeJSON(r, &req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			patch := social.Message{MessageText: req.MessageText}
			ctx := context.WithValue(r.Context(), ctxKeyPatchMessage, patch)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validateMessageID() func(http.Handler) http.Handler {
	return validateUUIDParam("message_id", ctxKeyMessageID)
}

func (s *Server) validateAccountID() func(http.Handler) http.Handler {
	return validateUUIDParam("account_id", ctxKeyAccountID)
}

func validateUUIDParam(name string, key ctxKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(chi.URLParam(r, name))
			if err != nil {
				badRequest(w, "invalid "+name)
				return
			}
			ctx := context.WithValue(r.Context(), key, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
