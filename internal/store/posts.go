package store

import (
	"errors"
	"strings"

	"mediaboard/internal/models"

	"gorm.io/gorm"
)

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// CreatePost is the accepted input for a new post. URL is ignored unless
// Type is models.PostTypeURL.
type CreatePost struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

func (s *PostStore) Create(authorID uint, in CreatePost) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	text := strings.TrimSpace(in.Text)
	if title == "" || text == "" {
		return nil, ErrInvalid
	}

	post := models.Post{
		UserID: authorID,
		Type:   in.Type,
		Title:  title,
		Text:   text,
	}
	if in.Type == models.PostTypeURL {
		post.URL = strings.TrimSpace(in.URL)
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts newest-first, optionally scoped to one author.
func (s *PostStore) List(userFilter *uint) ([]*models.Post, error) {
	query := s.db.Order("created_at DESC, id DESC")
	if userFilter != nil {
		query = query.Where("user_id = ?", *userFilter)
	}

	var posts []*models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostStore) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Update patches title/text/type/url on a post the caller owns. Ownership is
// the compound WHERE, not a prior read: zero affected rows means the post is
// missing or someone else's, and either way the caller gets ErrForbidden.
func (s *PostStore) Update(id, authorID uint, in CreatePost) error {
	title := strings.TrimSpace(in.Title)
	text := strings.TrimSpace(in.Text)
	if title == "" || text == "" {
		return ErrInvalid
	}

	patch := map[string]interface{}{
		"title": title,
		"text":  text,
		"type":  in.Type,
		"url":   "",
	}
	if in.Type == models.PostTypeURL {
		patch["url"] = strings.TrimSpace(in.URL)
	}

	res := s.db.Model(&models.Post{}).
		Where("id = ? AND user_id = ?", id, authorID).
		Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}

// Delete removes a post the caller owns. Comments are not cascaded; orphaned
// comments stay in storage, unreachable once their post is gone.
func (s *PostStore) Delete(id, authorID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, authorID).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrForbidden
	}
	return nil
}
