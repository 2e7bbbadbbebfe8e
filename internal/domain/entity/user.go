// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. One account may carry several linked
// authentication providers (local password, Google, Facebook).
type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	PasswordHash string         `json:"-"`
	Providers    []ProviderType `json:"providers"`
	Role         Role           `json:"role"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// HasProvider reports whether the given provider is already linked to the account.
func (u *User) HasProvider(p ProviderType) bool {
	for _, existing := range u.Providers {
		if existing == p {
			return true
		}
	}

	return false
}

// LinkProvider adds a provider to the account if it is not linked yet.
// It returns true when the provider list actually changed.
func (u *User) LinkProvider(p ProviderType) bool {
	if u.HasProvider(p) {
		return false
	}
	u.Providers = append(u.Providers, p)

	return true
}
