package store

import (
	"errors"

	"mediaboard/internal/identity"
	"mediaboard/internal/models"

	"gorm.io/gorm"
)

// findOrCreateAttempts bounds the re-read loop; two is enough for the
// lost-insert race, the third is slack for a flaky connection.
const findOrCreateAttempts = 3

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Resolve maps verified provider claims to the internal user record,
// creating one on first login, and unconditionally refreshes the stored
// name/avatar from the claims. This is the whole write side of a login.
func (s *UserStore) Resolve(claims *identity.Claims) (*models.User, error) {
	user, err := s.findOrCreateByEmail(claims.Email)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Updates(map[string]interface{}{
		"name":       claims.Name,
		"avatar_url": claims.Picture,
	}).Error; err != nil {
		return nil, err
	}
	user.Name = claims.Name
	user.AvatarURL = claims.Picture
	return user, nil
}

// findOrCreateByEmail tolerates concurrent first logins for the same email:
// a losing insert hits the unique index and the loop re-reads the winner's
// row instead of failing. Deliberate policy, not incidental retry.
func (s *UserStore) findOrCreateByEmail(email string) (*models.User, error) {
	var lastErr error
	for i := 0; i < findOrCreateAttempts; i++ {
		var user models.User
		err := s.db.Where("email = ?", email).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// Insert with just the email; the caller refreshes the profile.
		lastErr = s.db.Create(&models.User{Email: email}).Error
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, gorm.ErrRecordNotFound
}

// Authored is any document carrying an author reference that can receive
// the redacted public projection.
type Authored interface {
	AuthorID() uint
	SetUser(*models.PublicUser)
}

// AttachPublicUsers annotates every document with its author's public
// projection using one batched lookup over the distinct id set. Documents
// whose author no longer resolves are left without a user rather than
// failing the batch.
func (s *UserStore) AttachPublicUsers(docs []Authored) error {
	if len(docs) == 0 {
		return nil
	}

	seen := make(map[uint]bool, len(docs))
	ids := make([]uint, 0, len(docs))
	for _, doc := range docs {
		if id := doc.AuthorID(); !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	var users []models.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return err
	}

	byID := make(map[uint]*models.PublicUser, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Public()
	}

	for _, doc := range docs {
		if pub, ok := byID[doc.AuthorID()]; ok {
			doc.SetUser(pub)
		}
	}
	return nil
}
