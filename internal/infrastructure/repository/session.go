package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// Sessions persists the single current-session record under the
// "session" key. A logged-out state is stored as a literal JSON null.
type Sessions struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewSessions(store ports.KeyValueStore, log zerolog.Logger) *Sessions {
	return &Sessions{store: store, log: log}
}

func (r *Sessions) Current(ctx context.Context) (*domain.Session, error) {
	return load(ctx, r.store, r.log, keySession, (*domain.Session)(nil)), nil
}

func (r *Sessions) Save(ctx context.Context, session *domain.Session) error {
	return save(ctx, r.store, keySession, session)
}

func (r *Sessions) Clear(ctx context.Context) error {
	return save(ctx, r.store, keySession, (*domain.Session)(nil))
}
