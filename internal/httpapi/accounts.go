package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tinoosan/social/internal/social"
)

// register handles POST /register.
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	in, ok := r.Context().Value(ctxKeyRegister).(social.Account)
	if !ok {
		badRequest(w, "invalid request")
		return
	}
	acc, err := s.accounts.Register(r.Context(), in)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	accountsRegistered.Inc()
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// login handles POST /login and returns the stored account on a match.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	in, ok := r.Context().Value(ctxKeyLogin).(social.Account)
	if !ok {
		badRequest(w, "invalid request")
		return
	}
	acc, err := s.accounts.Login(r.Context(), in)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// listAccountMessages handles GET /accounts/{account_id}/messages. Unknown
// accounts yield an empty list.
func (s *Server) listAccountMessages(w http.ResponseWriter, r *http.Request) {
	accountID, _ := r.Context().Value(ctxKeyAccountID).(uuid.UUID)
	msgs, err := s.messages.ListByAccount(r.Context(), accountID)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, toMessageResponses(msgs))
}
