// Package message implements message rules: text length bounds, poster
// existence on create, text-only updates and idempotent deletes.
package message

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
	"github.com/tinoosan/social/internal/validation"
)

type Service interface {
	Create(ctx context.Context, candidate social.Message) (social.Message, error)
	Update(ctx context.Context, id uuid.UUID, patch social.Message) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context) ([]social.Message, error)
	Get(ctx context.Context, id uuid.UUID) (social.Message, bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]social.Message, error)
}

type service struct {
	store  Store
	policy PosterPolicy
	now    func() time.Time
}

// Option configures the message service.
type Option func(*service)

// WithPosterPolicy overrides the default PosterPolicyAccount.
func WithPosterPolicy(p PosterPolicy) Option { return func(s *service) { s.policy = p } }

// WithClock sets the clock used to stamp TimePostedEpoch.
func WithClock(now func() time.Time) Option { return func(s *service) { s.now = now } }

func New(store Store, opts ...Option) Service {
	s := &service{store: store, policy: PosterPolicyAccount, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type textRule struct {
	MessageText string `validate:"message_text"`
}

// ValidateText enforces 1..social.MaxMessageLen characters.
func ValidateText(text string) error {
	return validation.Struct(textRule{MessageText: text})
}

func (s *service) Create(ctx context.Context, candidate social.Message) (social.Message, error) {
	if err := ValidateText(candidate.MessageText); err != nil {
		return social.Message{}, err
	}
	ok, err := s.posterExists(ctx, candidate.PostedBy)
	if err != nil {
		return social.Message{}, err
	}
	if !ok {
		return social.Message{}, fmt.Errorf("%w: postedBy does not refer to a known poster", errs.ErrInvalid)
	}
	candidate.ID = uuid.Nil
	if candidate.TimePostedEpoch == 0 {
		candidate.TimePostedEpoch = s.now().Unix()
	}
	created, err := s.store.InsertMessage(ctx, candidate)
	if err != nil {
		return social.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return created, nil
}

func (s *service) posterExists(ctx context.Context, postedBy uuid.UUID) (bool, error) {
	if postedBy == uuid.Nil {
		return false, nil
	}
	var (
		ok  bool
		err error
	)
	switch s.policy {
	case PosterPolicyPriorMessage:
		ok, err = s.store.MessageExistsByPostedBy(ctx, postedBy)
	default:
		ok, err = s.store.AccountExistsByID(ctx, postedBy)
	}
	if err != nil {
		return false, fmt.Errorf("check poster: %w", err)
	}
	return ok, nil
}

// Update replaces only the text of an existing message and returns the
// number of messages changed. Invalid text yields errs.ErrInvalid and a
// missing id yields errs.ErrNotFound, both with a count of 0.
func (s *service) Update(ctx context.Context, id uuid.UUID, patch social.Message) (int64, error) {
	if err := ValidateText(patch.MessageText); err != nil {
		return 0, err
	}
	exists, err := s.store.MessageExistsByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("check message: %w", err)
	}
	if !exists {
		return 0, errs.ErrNotFound
	}
	current, err := s.store.FindMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, errs.ErrNotFound
		}
		return 0, fmt.Errorf("load message: %w", err)
	}
	current.MessageText = patch.MessageText
	if err := s.store.SaveMessage(ctx, current); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, errs.ErrNotFound
		}
		return 0, fmt.Errorf("save message: %w", err)
	}
	return 1, nil
}

// Delete removes a message. A missing id returns 0 and no error.
func (s *service) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	exists, err := s.store.MessageExistsByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("check message: %w", err)
	}
	if !exists {
		return 0, nil
	}
	n, err := s.store.DeleteMessageByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete message: %w", err)
	}
	return n, nil
}

func (s *service) List(ctx context.Context) ([]social.Message, error) {
	msgs, err := s.store.FindAllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return nonNil(msgs), nil
}

// Get reports absence with ok=false rather than an error.
func (s *service) Get(ctx context.Context, id uuid.UUID) (social.Message, bool, error) {
	m, err := s.store.FindMessageByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return social.Message{}, false, nil
	}
	if err != nil {
		return social.Message{}, false, fmt.Errorf("get message: %w", err)
	}
	return m, true, nil
}

// ListByAccount does not check that the account exists.
func (s *service) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]social.Message, error) {
	msgs, err := s.store.FindMessagesByPostedBy(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list messages by account: %w", err)
	}
	return nonNil(msgs), nil
}

func nonNil(msgs []social.Message) []social.Message {
	if msgs == nil {
		return []social.Message{}
	}
	return msgs
}
