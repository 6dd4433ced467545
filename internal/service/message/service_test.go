package message

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/mocks"
	"github.com/tinoosan/social/internal/social"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...Option) (Service, *mocks.MockMessageStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMessageStore(ctrl)
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(store, opts...), store
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	poster := uuid.New()

	t.Run("persists a valid message and stamps the time", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)
		id := uuid.New()

		store.EXPECT().AccountExistsByID(ctx, poster).Return(true, nil)
		store.EXPECT().
			InsertMessage(ctx, social.Message{PostedBy: poster, MessageText: "hi", TimePostedEpoch: fixedNow.Unix()}).
			DoAndReturn(func(_ context.Context, m social.Message) (social.Message, error) {
				m.ID = id
				return m, nil
			})

		m, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: "hi"})
		req.NoError(err)
		req.Equal(id, m.ID)
		req.Equal("hi", m.MessageText)
		req.Equal(poster, m.PostedBy)
	})

	t.Run("keeps a supplied timestamp", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		store.EXPECT().AccountExistsByID(ctx, poster).Return(true, nil)
		store.EXPECT().
			InsertMessage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m social.Message) (social.Message, error) {
				m.ID = uuid.New()
				return m, nil
			})

		m, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: "hi", TimePostedEpoch: 1669947792})
		req.NoError(err)
		req.Equal(int64(1669947792), m.TimePostedEpoch)
	})

	t.Run("text length bounds", func(t *testing.T) {
		cases := []struct {
			name string
			text string
			ok   bool
		}{
			{"empty", "", false},
			{"one char", "a", true},
			{"at limit", strings.Repeat("a", social.MaxMessageLen), true},
			{"over limit", strings.Repeat("a", social.MaxMessageLen+1), false},
			{"multibyte at limit", strings.Repeat("é", social.MaxMessageLen), true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := require.New(t)
				svc, store := newService(t)
				if tc.ok {
					store.EXPECT().AccountExistsByID(ctx, poster).Return(true, nil)
					store.EXPECT().InsertMessage(ctx, gomock.Any()).Return(social.Message{ID: uuid.New()}, nil)
				}
				_, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: tc.text})
				if tc.ok {
					req.NoError(err)
				} else {
					req.ErrorIs(err, errs.ErrInvalid)
				}
			})
		}
	})

	t.Run("unknown poster is invalid", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		store.EXPECT().AccountExistsByID(ctx, poster).Return(false, nil)
		store.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: "hi"})
		req.ErrorIs(err, errs.ErrInvalid)
	})

	t.Run("missing poster is invalid without a store call", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newService(t)

		_, err := svc.Create(ctx, social.Message{MessageText: "hi"})
		req.ErrorIs(err, errs.ErrInvalid)
	})

	t.Run("prior message policy consults the posted-by predicate", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t, WithPosterPolicy(PosterPolicyPriorMessage))

		store.EXPECT().MessageExistsByPostedBy(ctx, poster).Return(false, nil)
		store.EXPECT().AccountExistsByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: "hi"})
		req.ErrorIs(err, errs.ErrInvalid)

		store.EXPECT().MessageExistsByPostedBy(ctx, poster).Return(true, nil)
		store.EXPECT().InsertMessage(ctx, gomock.Any()).Return(social.Message{ID: uuid.New(), PostedBy: poster, MessageText: "hi"}, nil)

		m, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: "hi"})
		req.NoError(err)
		req.Equal(poster, m.PostedBy)
	})

	t.Run("store faults propagate", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)
		boom := errors.New("disk full")

		store.EXPECT().AccountExistsByID(ctx, poster).Return(true, nil)
		store.EXPECT().InsertMessage(ctx, gomock.Any()).Return(social.Message{}, boom)

		_, err := svc.Create(ctx, social.Message{PostedBy: poster, MessageText: "hi"})
		req.ErrorIs(err, boom)
		req.NotErrorIs(err, errs.ErrInvalid)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	poster := uuid.New()
	current := social.Message{ID: id, PostedBy: poster, MessageText: "old", TimePostedEpoch: 42}

	t.Run("replaces only the text", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		store.EXPECT().MessageExistsByID(ctx, id).Return(true, nil)
		store.EXPECT().FindMessageByID(ctx, id).Return(current, nil)
		store.EXPECT().SaveMessage(ctx, social.Message{ID: id, PostedBy: poster, MessageText: "new", TimePostedEpoch: 42}).Return(nil)

		n, err := svc.Update(ctx, id, social.Message{MessageText: "new", PostedBy: uuid.New(), TimePostedEpoch: 7})
		req.NoError(err)
		req.Equal(int64(1), n)
	})

	t.Run("missing id returns zero", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		store.EXPECT().MessageExistsByID(ctx, id).Return(false, nil)

		n, err := svc.Update(ctx, id, social.Message{MessageText: "new"})
		req.Zero(n)
		req.ErrorIs(err, errs.ErrNotFound)
	})

	t.Run("invalid text returns zero before touching the store", func(t *testing.T) {
		req := require.New(t)
		svc, _ := newService(t)

		n, err := svc.Update(ctx, id, social.Message{MessageText: ""})
		req.Zero(n)
		req.ErrorIs(err, errs.ErrInvalid)

		n, err = svc.Update(ctx, id, social.Message{MessageText: strings.Repeat("x", 256)})
		req.Zero(n)
		req.ErrorIs(err, errs.ErrInvalid)
	})

	t.Run("message deleted between check and save", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		store.EXPECT().MessageExistsByID(ctx, id).Return(true, nil)
		store.EXPECT().FindMessageByID(ctx, id).Return(current, nil)
		store.EXPECT().SaveMessage(ctx, gomock.Any()).Return(errs.ErrNotFound)

		n, err := svc.Update(ctx, id, social.Message{MessageText: "new"})
		req.Zero(n)
		req.ErrorIs(err, errs.ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("existing then absent", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		gomock.InOrder(
			store.EXPECT().MessageExistsByID(ctx, id).Return(true, nil),
			store.EXPECT().DeleteMessageByID(ctx, id).Return(int64(1), nil),
			store.EXPECT().MessageExistsByID(ctx, id).Return(false, nil),
		)

		n, err := svc.Delete(ctx, id)
		req.NoError(err)
		req.Equal(int64(1), n)

		n, err = svc.Delete(ctx, id)
		req.NoError(err)
		req.Zero(n)
	})

	t.Run("store faults propagate", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)
		boom := errors.New("broken pipe")

		store.EXPECT().MessageExistsByID(ctx, id).Return(false, boom)

		_, err := svc.Delete(ctx, id)
		req.ErrorIs(err, boom)
	})
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()
	poster := uuid.New()
	m1 := social.Message{ID: uuid.New(), PostedBy: poster, MessageText: "one"}

	t.Run("list returns an empty slice when the store has none", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)

		store.EXPECT().FindAllMessages(ctx).Return(nil, nil)

		msgs, err := svc.List(ctx)
		req.NoError(err)
		req.NotNil(msgs)
		req.Empty(msgs)
	})

	t.Run("get reports absence without an error", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)
		missing := uuid.New()

		store.EXPECT().FindMessageByID(ctx, missing).Return(social.Message{}, errs.ErrNotFound)
		store.EXPECT().FindMessageByID(ctx, m1.ID).Return(m1, nil)

		_, ok, err := svc.Get(ctx, missing)
		req.NoError(err)
		req.False(ok)

		got, ok, err := svc.Get(ctx, m1.ID)
		req.NoError(err)
		req.True(ok)
		req.Equal(m1, got)
	})

	t.Run("list by account does not check the account", func(t *testing.T) {
		req := require.New(t)
		svc, store := newService(t)
		stranger := uuid.New()

		store.EXPECT().FindMessagesByPostedBy(ctx, poster).Return([]social.Message{m1}, nil)
		store.EXPECT().FindMessagesByPostedBy(ctx, stranger).Return(nil, nil)
		store.EXPECT().AccountExistsByID(gomock.Any(), gomock.Any()).Times(0)

		msgs, err := svc.ListByAccount(ctx, poster)
		req.NoError(err)
		req.Equal([]social.Message{m1}, msgs)

		msgs, err = svc.ListByAccount(ctx, stranger)
		req.NoError(err)
		req.Empty(msgs)
	})
}

func TestParsePosterPolicy(t *testing.T) {
	req := require.New(t)
	p, err := ParsePosterPolicy("")
	req.NoError(err)
	req.Equal(PosterPolicyAccount, p)
	p, err = ParsePosterPolicy(" Prior_Message ")
	req.NoError(err)
	req.Equal(PosterPolicyPriorMessage, p)
	_, err = ParsePosterPolicy("bogus")
	req.Error(err)
}
