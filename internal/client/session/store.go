// Package session holds the client's authentication state: a single source of
// truth for "who is logged in", persisted across runs in the local database.
//
// Reads and writes go through an atomic snapshot swap, so a reader always
// sees either the previous or the new complete session, never a mix.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/foundlab/lostfound/internal/client/models"
	"github.com/foundlab/lostfound/internal/client/repositories/metadata"
	"github.com/foundlab/lostfound/internal/common"
	"github.com/foundlab/lostfound/internal/dbx"
)

var anonymous = models.Session{}

type Store struct {
	db  *sql.DB
	cur atomic.Pointer[models.Session]
}

func NewStore(db *sql.DB) *Store {
	s := &Store{db: db}
	s.cur.Store(&anonymous)
	return s
}

// Load reads any persisted token/user pair into the in-memory snapshot.
// A missing or malformed pair yields an anonymous session. The token is not
// validated against the backend here; validity is established lazily on the
// first API call.
func (s *Store) Load(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.SessionTokenKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.cur.Store(&anonymous)
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	rawUser, err := repo.Get(ctx, common.SessionUserKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.cur.Store(&anonymous)
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil || len(token) == 0 {
		// Malformed persisted state is treated as logged out.
		s.cur.Store(&anonymous)
		return nil
	}

	s.cur.Store(&models.Session{Token: string(token), User: &user})
	return nil
}

// Set atomically replaces the session and persists both fields in a single
// transaction. Token and user must both be present.
func (s *Store) Set(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("%w: session requires both token and user", common.ErrValidation)
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionUserKey, rawUser)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	u := *user
	s.cur.Store(&models.Session{Token: token, User: &u})
	return nil
}

// Clear removes the session from memory and persistence.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.SessionTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.SessionUserKey)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.cur.Store(&anonymous)
	return nil
}

// Current returns the session snapshot. Side-effect free.
func (s *Store) Current() models.Session {
	return *s.cur.Load()
}
