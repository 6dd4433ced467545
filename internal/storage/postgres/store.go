// Package postgres provides a pgx-backed storage implementation that satisfies
// the account and message store contracts used by the services.
//
// The schema lives in migrations/ and is embedded; Migrate applies it.
package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
)

//go:embed migrations/*.sql
var migrations embed.FS

// uniqueViolation is the SQLSTATE raised by a UNIQUE constraint.
const uniqueViolation = "23505"

// Store holds a pgx connection pool and implements the store contracts.
// All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Migrate applies the embedded schema files in name order. Every statement is
// idempotent, so running it on each start is safe.
func (s *Store) Migrate(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := migrations.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

// --- Accounts ---

// AccountExists reports whether the username is taken.
func (s *Store) AccountExists(ctx context.Context, username string) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `select exists(select 1 from accounts where username = $1)`, username).Scan(&ok)
	return ok, err
}

// InsertAccount inserts an account row; the database assigns the id.
func (s *Store) InsertAccount(ctx context.Context, a social.Account) (social.Account, error) {
	err := s.pool.QueryRow(ctx, `
        insert into accounts (username, password)
        values ($1, $2)
        returning id
    `, a.Username, a.Password).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return social.Account{}, errs.ErrConflict
		}
		return social.Account{}, err
	}
	return a, nil
}

// FindAccountByUsername fetches a single account by exact username.
func (s *Store) FindAccountByUsername(ctx context.Context, username string) (social.Account, error) {
	var a social.Account
	err := s.pool.QueryRow(ctx, `
        select id, username, password
        from accounts
        where username = $1
    `, username).Scan(&a.ID, &a.Username, &a.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return social.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return social.Account{}, err
	}
	return a, nil
}

// AccountExistsByID reports whether an account with the id exists.
func (s *Store) AccountExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `select exists(select 1 from accounts where id = $1)`, id).Scan(&ok)
	return ok, err
}

// --- Messages ---

// MessageExistsByPostedBy reports whether the account has any message.
func (s *Store) MessageExistsByPostedBy(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `select exists(select 1 from messages where posted_by = $1)`, accountID).Scan(&ok)
	return ok, err
}

// InsertMessage inserts a message row; the database assigns the id.
func (s *Store) InsertMessage(ctx context.Context, m social.Message) (social.Message, error) {
	err := s.pool.QueryRow(ctx, `
        insert into messages (posted_by, message_text, time_posted_epoch)
        values ($1, $2, $3)
        returning id
    `, m.PostedBy, m.MessageText, m.TimePostedEpoch).Scan(&m.ID)
	if err != nil {
		return social.Message{}, err
	}
	return m, nil
}

// MessageExistsByID reports whether a message with the id exists.
func (s *Store) MessageExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `select exists(select 1 from messages where id = $1)`, id).Scan(&ok)
	return ok, err
}

// FindMessageByID fetches a single message.
func (s *Store) FindMessageByID(ctx context.Context, id uuid.UUID) (social.Message, error) {
	var m social.Message
	err := s.pool.QueryRow(ctx, `
        select id, posted_by, message_text, time_posted_epoch
        from messages
        where id = $1
    `, id).Scan(&m.ID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch)
	if errors.Is(err, pgx.ErrNoRows) {
		return social.Message{}, errs.ErrNotFound
	}
	if err != nil {
		return social.Message{}, err
	}
	return m, nil
}

// SaveMessage updates the mutable columns of an existing message.
func (s *Store) SaveMessage(ctx context.Context, m social.Message) error {
	ct, err := s.pool.Exec(ctx, `
        update messages
        set posted_by=$1, message_text=$2, time_posted_epoch=$3
        where id=$4
    `, m.PostedBy, m.MessageText, m.TimePostedEpoch, m.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteMessageByID deletes a message and returns the number of rows removed.
func (s *Store) DeleteMessageByID(ctx context.Context, id uuid.UUID) (int64, error) {
	ct, err := s.pool.Exec(ctx, `delete from messages where id = $1`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

// FindAllMessages lists every message in insertion order.
func (s *Store) FindAllMessages(ctx context.Context) ([]social.Message, error) {
	rows, err := s.pool.Query(ctx, `
        select id, posted_by, message_text, time_posted_epoch
        from messages
        order by seq asc
    `)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

// FindMessagesByPostedBy lists a poster's messages in insertion order.
func (s *Store) FindMessagesByPostedBy(ctx context.Context, accountID uuid.UUID) ([]social.Message, error) {
	rows, err := s.pool.Query(ctx, `
        select id, posted_by, message_text, time_posted_epoch
        from messages
        where posted_by = $1
        order by seq asc
    `, accountID)
	if err != nil {
		return nil, err
	}
	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]social.Message, error) {
	defer rows.Close()
	out := make([]social.Message, 0)
	for rows.Next() {
		var m social.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
