// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// CreateUserParams holds the input for a new back-office account. The
// password must already be argon2id-hashed; the store never sees
// plaintext credentials.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

// CreateUser stores a new user.
func (s *MemoryStore) CreateUser(_ context.Context, arg CreateUserParams) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &model.User{
		ID:           s.nextID(seqUser),
		Username:     arg.Username,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		Role:         arg.Role,
		CreatedAt:    s.now(),
	}
	s.users[u.ID] = u
	return *u, nil
}

// GetUserByID returns a user or ErrNotFound.
func (s *MemoryStore) GetUserByID(_ context.Context, id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return *u, nil
}

// GetUserByUsername returns the user with the given username or ErrNotFound.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return model.User{}, ErrNotFound
}
