// Package repository implements the collection repositories on top of
// the key-value store port. Every collection is one JSON blob under a
// fixed key; mutations are whole-collection read-modify-write with
// last-write-wins semantics and no cross-key transactions.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/ports"
)

const (
	keyUsers      = "users"
	keyProducts   = "products"
	keySession    = "session"
	cartKeyPrefix = "cart_"
)

// load returns the decoded value stored under key, or fallback when the
// key is absent, the store read fails, or the stored JSON is corrupt.
// Read failures are logged for diagnostics and never propagate.
func load[T any](ctx context.Context, s ports.KeyValueStore, log zerolog.Logger, key string, fallback T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("store read failed, using fallback")
		return fallback
	}
	if !ok || len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("corrupt stored value, using fallback")
		return fallback
	}
	return v
}

// save marshals v and writes it under key, overwriting unconditionally.
func save(ctx context.Context, s ports.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("store write %q: %w", key, err)
	}
	return nil
}
