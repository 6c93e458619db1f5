package models

import (
	"time"
)

// MaxAncestors caps the stored lineage of a comment. The chain is
// [parent, parent's parent, ...] truncated to the most recent entries,
// so chain[0] is always the immediate parent when a parent exists.
const MaxAncestors = 20

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostID      uint      `gorm:"not null;index" json:"postId"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	ParentID    *uint     `gorm:"index" json:"parentCommentId"` // nil for top-level comments
	AncestorIDs []uint    `gorm:"serializer:json;type:text" json:"ancestorCommentIds"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CreatedAt   time.Time `json:"date"`

	// Filled on read paths, never stored.
	User     *PublicUser `gorm:"-" json:"user,omitempty"`
	TextHTML string      `gorm:"-" json:"textHtml,omitempty"`
}

func (c *Comment) AuthorID() uint        { return c.UserID }
func (c *Comment) SetUser(u *PublicUser) { c.User = u }
