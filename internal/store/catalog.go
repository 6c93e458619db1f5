package store

import (
	"strings"

	"mediaboard/internal/config"
	"mediaboard/internal/models"

	"gorm.io/gorm"
)

type CatalogStore struct {
	db   *gorm.DB
	sort string
}

func NewCatalogStore(db *gorm.DB, sort string) *CatalogStore {
	return &CatalogStore{db: db, sort: sort}
}

func validCategory(category string) bool {
	switch category {
	case models.CategoryMovie, models.CategoryBook, models.CategoryMusic:
		return true
	}
	return false
}

// CreateEntry is the accepted input for a new catalog entry.
type CreateEntry struct {
	Category string `json:"catalog"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     string `json:"year"`
}

func (s *CatalogStore) Create(submitterID uint, in CreateEntry) (*models.CatalogEntry, error) {
	category := strings.ToLower(strings.TrimSpace(in.Category))
	title := strings.TrimSpace(in.Title)
	if title == "" || !validCategory(category) {
		return nil, ErrInvalid
	}

	entry := models.CatalogEntry{
		Category: category,
		Title:    title,
		Author:   strings.TrimSpace(in.Author),
		Year:     strings.TrimSpace(in.Year),
		UserID:   submitterID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// order applies the configured sort uniformly to every catalog read.
func (s *CatalogStore) order(query *gorm.DB) *gorm.DB {
	if s.sort == config.CatalogSortNewest {
		return query.Order("created_at DESC, id DESC")
	}
	return query.Order("title ASC, id ASC")
}

func (s *CatalogStore) List() ([]*models.CatalogEntry, error) {
	var entries []*models.CatalogEntry
	if err := s.order(s.db).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *CatalogStore) ListByCategory(category string) ([]*models.CatalogEntry, error) {
	var entries []*models.CatalogEntry
	err := s.order(s.db.Where("category = ?", strings.ToLower(category))).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete is submitter-scoped, same policy as posts.
func (s *CatalogStore) Delete(id, submitterID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, submitterID).
		Delete(&models.CatalogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}
