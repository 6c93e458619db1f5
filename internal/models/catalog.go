package models

import (
	"time"
)

// Catalog categories form a small closed set; anything else is rejected
// at the store layer.
const (
	CategoryMovie = "movie"
	CategoryBook  = "book"
	CategoryMusic = "music"
)

type CatalogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Category  string    `gorm:"not null;index" json:"catalog"`
	Title     string    `gorm:"not null" json:"title"`
	Author    string    `json:"author"` // creator of the media item, not the submitter
	Year      string    `json:"year"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"date"`
}
