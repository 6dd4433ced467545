package social

import "github.com/google/uuid"

const (
	// MinPasswordLen is the shortest password accepted at registration.
	MinPasswordLen = 4
	// MaxMessageLen bounds MessageText, counted in characters.
	MaxMessageLen = 255
)

// Account is a registered user. ID is assigned by the store on insert.
type Account struct {
	ID       uuid.UUID
	Username string
	// Password is stored and compared verbatim.
	Password string
}

// Message is a post authored by an account.
type Message struct {
	ID              uuid.UUID
	PostedBy        uuid.UUID
	MessageText     string
	// TimePostedEpoch is the creation time in Unix seconds.
	TimePostedEpoch int64
}
