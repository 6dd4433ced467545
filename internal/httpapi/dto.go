package httpapi

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tinoosan/social/internal/social"
)

// Requests. Unknown fields, including client-supplied IDs, are ignored.

type accountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageRequest struct {
	PostedBy        uuid.UUID `json:"postedBy"`
	MessageText     string    `json:"messageText"`
	TimePostedEpoch int64     `json:"timePostedEpoch"`
}

type patchMessageRequest struct {
	MessageText string `json:"messageText"`
}

// Responses

type accountResponse struct {
	AccountID uuid.UUID `json:"accountId"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
}

type messageResponse struct {
	MessageID       uuid.UUID `json:"messageId"`
	PostedBy        uuid.UUID `json:"postedBy"`
	MessageText     string    `json:"messageText"`
	TimePostedEpoch int64     `json:"timePostedEpoch"`
}

func toAccountDomain(req accountRequest) social.Account {
	return social.Account{Username: req.Username, Password: req.Password}
}

func toMessageDomain(req messageRequest) social.Message {
	return social.Message{
		PostedBy:        req.PostedBy,
		MessageText:     req.MessageText,
		TimePostedEpoch: req.TimePostedEpoch,
	}
}

func toAccountResponse(a social.Account) accountResponse {
	return accountResponse{AccountID: a.ID, Username: a.Username, Password: a.Password}
}

func toMessageResponse(m social.Message) messageResponse {
	return messageResponse{
		MessageID:       m.ID,
		PostedBy:        m.PostedBy,
		MessageText:     m.MessageText,
		TimePostedEpoch: m.TimePostedEpoch,
	}
}

func toMessageResponses(ms []social.Message) []messageResponse {
	return lo.Map(ms, func(m social.Message, _ int) messageResponse { return toMessageResponse(m) })
}
