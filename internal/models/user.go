package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"-"`
	Name      string    `json:"name"`      // refreshed from provider claims on every login
	AvatarURL string    `json:"avatarUrl"` // refreshed from provider claims on every login
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the redacted projection safe to attach to other users'
// documents. Email never appears here.
type PublicUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
