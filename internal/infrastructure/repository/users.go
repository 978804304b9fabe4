package repository

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// userRecord is the stored shape of a user. The domain type hides the
// password hash from JSON rendering, so persistence gets its own record.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toUserRecord(u domain.User) userRecord {
	return userRecord(u)
}

func fromUserRecord(r userRecord) domain.User {
	return domain.User(r)
}

// Users persists the users collection under the "users" key.
type Users struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewUsers(store ports.KeyValueStore, log zerolog.Logger) *Users {
	return &Users{store: store, log: log}
}

func (r *Users) all(ctx context.Context) []userRecord {
	return load(ctx, r.store, r.log, keyUsers, []userRecord{})
}

func (r *Users) All(ctx context.Context) ([]domain.User, error) {
	records := r.all(ctx)
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, fromUserRecord(rec))
	}
	return users, nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, rec := range r.all(ctx) {
		if strings.EqualFold(rec.Email, email) {
			u := fromUserRecord(rec)
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *Users) FindByID(ctx context.Context, id string) (*domain.User, error) {
	for _, rec := range r.all(ctx) {
		if rec.ID == id {
			u := fromUserRecord(rec)
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *Users) Create(ctx context.Context, user *domain.User) error {
	records := r.all(ctx)
	for i := range records {
		if strings.EqualFold(records[i].Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	records = append(records, toUserRecord(*user))
	return save(ctx, r.store, keyUsers, records)
}

func (r *Users) Update(ctx context.Context, user *domain.User) error {
	records := r.all(ctx)
	for i := range records {
		if records[i].ID == user.ID {
			records[i] = toUserRecord(*user)
			return save(ctx, r.store, keyUsers, records)
		}
	}
	return domain.ErrUserNotFound
}
