// Package storetest holds a conformance suite that every storage backend runs.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/service/account"
	"github.com/tinoosan/social/internal/service/message"
	"github.com/tinoosan/social/internal/social"
)

// Store is the union of the service-facing contracts.
type Store interface {
	account.Store
	message.Store
}

// Run exercises a fresh store returned by open for each subtest.
func Run(t *testing.T, open func(t *testing.T) Store) {
	t.Run("accounts", func(t *testing.T) { testAccounts(t, open(t)) })
	t.Run("duplicate username", func(t *testing.T) { testDuplicateUsername(t, open(t)) })
	t.Run("concurrent registration", func(t *testing.T) { testConcurrentInsert(t, open(t)) })
	t.Run("messages", func(t *testing.T) { testMessages(t, open(t)) })
	t.Run("ordering", func(t *testing.T) { testOrdering(t, open(t)) })
}

func testAccounts(t *testing.T, s Store) {
	req := require.New(t)
	ctx := context.Background()

	ok, err := s.AccountExists(ctx, "alice")
	req.NoError(err)
	req.False(ok)

	created, err := s.InsertAccount(ctx, social.Account{Username: "alice", Password: "pw12"})
	req.NoError(err)
	req.NotEqual(uuid.Nil, created.ID)

	ok, err = s.AccountExists(ctx, "alice")
	req.NoError(err)
	req.True(ok)

	ok, err = s.AccountExistsByID(ctx, created.ID)
	req.NoError(err)
	req.True(ok)

	ok, err = s.AccountExistsByID(ctx, uuid.New())
	req.NoError(err)
	req.False(ok)

	got, err := s.FindAccountByUsername(ctx, "alice")
	req.NoError(err)
	req.Equal(created, got)

	// usernames are case-sensitive
	_, err = s.FindAccountByUsername(ctx, "Alice")
	req.ErrorIs(err, errs.ErrNotFound)
}

func testDuplicateUsername(t *testing.T, s Store) {
	req := require.New(t)
	ctx := context.Background()

	_, err := s.InsertAccount(ctx, social.Account{Username: "bob", Password: "pw12"})
	req.NoError(err)
	_, err = s.InsertAccount(ctx, social.Account{Username: "bob", Password: "other"})
	req.ErrorIs(err, errs.ErrConflict)
}

func testConcurrentInsert(t *testing.T, s Store) {
	req := require.New(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.InsertAccount(ctx, social.Account{Username: "racer", Password: "pw12"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		req.ErrorIs(err, errs.ErrConflict)
	}
	req.Equal(1, wins)
}

func testMessages(t *testing.T, s Store) {
	req := require.New(t)
	ctx := context.Background()

	acc, err := s.InsertAccount(ctx, social.Account{Username: "carol", Password: "pw12"})
	req.NoError(err)

	ok, err := s.MessageExistsByPostedBy(ctx, acc.ID)
	req.NoError(err)
	req.False(ok)

	m, err := s.InsertMessage(ctx, social.Message{PostedBy: acc.ID, MessageText: "hello", TimePostedEpoch: 1700000000})
	req.NoError(err)
	req.NotEqual(uuid.Nil, m.ID)

	ok, err = s.MessageExistsByPostedBy(ctx, acc.ID)
	req.NoError(err)
	req.True(ok)

	ok, err = s.MessageExistsByID(ctx, m.ID)
	req.NoError(err)
	req.True(ok)

	got, err := s.FindMessageByID(ctx, m.ID)
	req.NoError(err)
	req.Equal(m, got)

	got.MessageText = "edited"
	req.NoError(s.SaveMessage(ctx, got))
	got2, err := s.FindMessageByID(ctx, m.ID)
	req.NoError(err)
	req.Equal("edited", got2.MessageText)
	req.Equal(m.PostedBy, got2.PostedBy)
	req.Equal(m.TimePostedEpoch, got2.TimePostedEpoch)

	byPoster, err := s.FindMessagesByPostedBy(ctx, acc.ID)
	req.NoError(err)
	req.Len(byPoster, 1)

	none, err := s.FindMessagesByPostedBy(ctx, uuid.New())
	req.NoError(err)
	req.Empty(none)

	n, err := s.DeleteMessageByID(ctx, m.ID)
	req.NoError(err)
	req.Equal(int64(1), n)
	n, err = s.DeleteMessageByID(ctx, m.ID)
	req.NoError(err)
	req.Equal(int64(0), n)

	_, err = s.FindMessageByID(ctx, m.ID)
	req.ErrorIs(err, errs.ErrNotFound)
	req.ErrorIs(s.SaveMessage(ctx, got), errs.ErrNotFound)

	ok, err = s.MessageExistsByPostedBy(ctx, acc.ID)
	req.NoError(err)
	req.False(ok)

	all, err := s.FindAllMessages(ctx)
	req.NoError(err)
	req.Empty(all)
}

func testOrdering(t *testing.T, s Store) {
	req := require.New(t)
	ctx := context.Background()

	a, err := s.InsertAccount(ctx, social.Account{Username: "dave", Password: "pw12"})
	req.NoError(err)
	b, err := s.InsertAccount(ctx, social.Account{Username: "erin", Password: "pw12"})
	req.NoError(err)

	texts := []string{"first", "second", "third", "fourth"}
	posters := []uuid.UUID{a.ID, b.ID, a.ID, b.ID}
	ids := make([]uuid.UUID, len(texts))
	for i, txt := range texts {
		m, err := s.InsertMessage(ctx, social.Message{PostedBy: posters[i], MessageText: txt})
		req.NoError(err)
		ids[i] = m.ID
	}
	_, err = s.DeleteMessageByID(ctx, ids[1])
	req.NoError(err)

	all, err := s.FindAllMessages(ctx)
	req.NoError(err)
	req.Len(all, 3)
	req.Equal("first", all[0].MessageText)
	req.Equal("third", all[1].MessageText)
	req.Equal("fourth", all[2].MessageText)

	fromA, err := s.FindMessagesByPostedBy(ctx, a.ID)
	req.NoError(err)
	req.Len(fromA, 2)
	req.Equal("first", fromA[0].MessageText)
	req.Equal("third", fromA[1].MessageText)
}
