package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tinoosan/social/internal/social"
)

func (s *Server) createMessage(w http.ResponseWriter, r *http.Request) {
	in, ok := r.Context().Value(ctxKeyPostMessage).(social.Message)
	if !ok {
		badRequest(w, "invalid request")
		return
	}
	msg, err := s.messages.Create(r.Context(), in)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	messagesCreated.Inc()
	toJSON(w, http.StatusOK, toMessageResponse(msg))
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.messages.List(r.Context())
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, toMessageResponses(msgs))
}

// getMessage answers 200 with an empty body when the message does not exist.
func (s *Server) getMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyMessageID).(uuid.UUID)
	msg, found, err := s.messages.Get(r.Context(), id)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusOK)
		return
	}
	toJSON(w, http.StatusOK, toMessageResponse(msg))
}

// updateMessage handles PATCH /messages/{message_id}. The body of a
// successful response is the number of messages changed.
func (s *Server) updateMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyMessageID).(uuid.UUID)
	patch, ok := r.Context().Value(ctxKeyPatchMessage).(social.Message)
	if !ok {
		badRequest(w, "invalid request")
		return
	}
	n, err := s.messages.Update(r.Context(), id, patch)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	if n != 1 {
		badRequest(w, "message not updated")
		return
	}
	toJSON(w, http.StatusOK, n)
}

// deleteMessage is idempotent: deleting an absent message is 200 with an
// empty body, a removal is 200 with the count.
func (s *Server) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyMessageID).(uuid.UUID)
	n, err := s.messages.Delete(r.Context(), id)
	if err != nil {
		s.writeServiceErr(w, r, err)
		return
	}
	if n == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}
	toJSON(w, http.StatusOK, n)
}
