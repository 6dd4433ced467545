//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_message_store.go -package=mocks -mock_names=Store=MockMessageStore
package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/tinoosan/social/internal/social"
)

// Store is the persistence contract consumed by the message service.
type Store interface {
	// AccountExistsByID reports whether an account with the id is stored.
	AccountExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// MessageExistsByPostedBy reports whether the account has posted at least one message.
	MessageExistsByPostedBy(ctx context.Context, accountID uuid.UUID) (bool, error)
	// InsertMessage persists a new message and assigns its ID.
	InsertMessage(ctx context.Context, msg social.Message) (social.Message, error)
	MessageExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// FindMessageByID returns errs.ErrNotFound when no message matches.
	FindMessageByID(ctx context.Context, id uuid.UUID) (social.Message, error)
	// SaveMessage overwrites a stored message; errs.ErrNotFound if it is gone.
	SaveMessage(ctx context.Context, msg social.Message) error
	// DeleteMessageByID returns the number of rows removed (0 or 1).
	DeleteMessageByID(ctx context.Context, id uuid.UUID) (int64, error)
	// FindAllMessages lists every message in store-native order.
	FindAllMessages(ctx context.Context) ([]social.Message, error)
	FindMessagesByPostedBy(ctx context.Context, accountID uuid.UUID) ([]social.Message, error)
}
