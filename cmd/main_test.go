package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinoosan/social/internal/config"
	"github.com/tinoosan/social/internal/service/account"
	"github.com/tinoosan/social/internal/service/message"
	"github.com/tinoosan/social/internal/social"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLogLevel(" warning "))
	require.Equal(t, slog.LevelError, parseLogLevel("err"))
	require.Equal(t, slog.LevelInfo, parseLogLevel(""))
}

func TestOpenStore_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := openStore(ctx, config.Config{}, discard())
	require.NoError(t, err)
	closeFn()
	require.NoError(t, s.Ready(ctx))

	path := filepath.Join(t.TempDir(), "social.db")
	s, closeFn, err = openStore(ctx, config.Config{SQLitePath: path}, discard())
	require.NoError(t, err)
	defer closeFn()
	require.NoError(t, s.Ready(ctx))
	ok, err := s.AccountExists(ctx, "demo")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDevSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, closeFn, err := openStore(ctx, config.Config{}, discard())
	require.NoError(t, err)
	defer closeFn()

	accounts := account.New(s)
	messages := message.New(s)
	require.NoError(t, devSeed(ctx, discard(), message.PosterPolicyAccount, accounts, messages))
	require.NoError(t, devSeed(ctx, discard(), message.PosterPolicyAccount, accounts, messages))

	acc, err := accounts.Login(ctx, social.Account{Username: "demo", Password: "demo1234"})
	require.NoError(t, err)
	msgs, err := messages.ListByAccount(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
}

func TestDevSeed_PriorMessagePolicySeedsAccountOnly(t *testing.T) {
	ctx := context.Background()
	s, closeFn, err := openStore(ctx, config.Config{}, discard())
	require.NoError(t, err)
	defer closeFn()

	policy := message.PosterPolicyPriorMessage
	accounts := account.New(s)
	messages := message.New(s, message.WithPosterPolicy(policy))
	require.NoError(t, devSeed(ctx, discard(), policy, accounts, messages))

	acc, err := accounts.Login(ctx, social.Account{Username: "demo", Password: "demo1234"})
	require.NoError(t, err)
	msgs, err := messages.List(ctx)
	require.NoError(t, err)
	require.Empty(t, msgs)

	// a rerun finds the account and does not fail
	require.NoError(t, devSeed(ctx, discard(), policy, accounts, messages))
	ok, err := s.AccountExistsByID(ctx, acc.ID)
	require.NoError(t, err)
	require.True(t, ok)
}
