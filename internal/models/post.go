package models

import (
	"time"
)

// PostTypeURL marks link posts; the URL field is only persisted for these.
const PostTypeURL = "url"

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Type      string    `json:"type,omitempty"`
	Title     string    `gorm:"not null" json:"title"`
	Text      string    `gorm:"type:text" json:"text"`
	URL       string    `json:"url,omitempty"` // set only when Type == PostTypeURL
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`

	// Filled on read paths, never stored.
	User     *PublicUser `gorm:"-" json:"user,omitempty"`
	TextHTML string      `gorm:"-" json:"textHtml,omitempty"`
}

func (p *Post) AuthorID() uint        { return p.UserID }
func (p *Post) SetUser(u *PublicUser) { p.User = u }
