package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

var ErrEmptyToken = errors.New("session token is empty")

// Store is the process-wide credential store. It holds no state of its
// own beyond the two lifetimes; every Read goes to storage.
type Store struct {
	ephemeral Lifetime
	durable   Lifetime
	log       logging.Logger
}

func NewStore(ephemeral, durable Lifetime, log logging.Logger) *Store {
	return &Store{ephemeral: ephemeral, durable: durable, log: log}
}

// lifetimes returns the read order. Ephemeral comes first, so a session
// written without "remember me" shadows an older remembered one.
func (s *Store) lifetimes() []Lifetime {
	return []Lifetime{s.ephemeral, s.durable}
}

// Read returns the session held by the first lifetime that has a token and
// a decodable user. Storage failures count as "no session here".
func (s *Store) Read(ctx context.Context) (*models.Session, bool) {
	for _, lt := range s.lifetimes() {
		token, raw, err := lt.Load(ctx)
		if err != nil {
			s.log.Warn(ctx, "session storage unavailable", "lifetime", lt.Name(), "error", err)
			continue
		}
		if token == "" {
			continue
		}

		var user models.UserRecord
		if err := json.Unmarshal(raw, &user); err != nil {
			s.log.Warn(ctx, "stored user record unreadable", "lifetime", lt.Name(), "error", err)
			continue
		}
		return &models.Session{Token: token, User: user}, true
	}
	return nil, false
}

// Write stores the session in the durable lifetime when remember is set and
// in the ephemeral one otherwise. The other lifetime is left untouched.
func (s *Store) Write(ctx context.Context, token string, user models.UserRecord, remember bool) error {
	if token == "" {
		return ErrEmptyToken
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	lt := s.ephemeral
	if remember {
		lt = s.durable
	}
	if err := lt.Save(ctx, token, raw); err != nil {
		return fmt.Errorf("save session to %s storage: %w", lt.Name(), err)
	}

	s.log.Debug(ctx, "session stored", "lifetime", lt.Name(), "user_id", user.ID)
	return nil
}

// Clear erases both lifetimes. A failure in one does not stop the other.
func (s *Store) Clear(ctx context.Context) error {
	var errs []error
	for _, lt := range s.lifetimes() {
		if err := lt.Erase(ctx); err != nil {
			errs = append(errs, fmt.Errorf("clear %s storage: %w", lt.Name(), err))
		}
	}
	return errors.Join(errs...)
}
