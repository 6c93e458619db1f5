package store

import (
	"testing"

	"mediaboard/internal/identity"
	"mediaboard/internal/models"

	"gorm.io/gorm"
)

func TestFindOrCreateByEmail(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)

	created, err := users.findOrCreateByEmail("a@example.com")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if created.Email != "a@example.com" {
		t.Errorf("email = %q, want a@example.com", created.Email)
	}
	if created.Name != "" || created.AvatarURL != "" {
		t.Errorf("new user should carry only the email, got name=%q avatar=%q",
			created.Name, created.AvatarURL)
	}

	again, err := users.findOrCreateByEmail("a@example.com")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("second call returned id %d, want %d", again.ID, created.ID)
	}

	var count int64
	database.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestResolveRefreshesProfileOnEveryLogin(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)

	first, err := users.Resolve(&identity.Claims{
		Email: "a@example.com", EmailVerified: true,
		Name: "Old Name", Picture: "https://example.com/old.png",
	})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}

	second, err := users.Resolve(&identity.Claims{
		Email: "a@example.com", EmailVerified: true,
		Name: "New Name", Picture: "https://example.com/new.png",
	})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("login created a second user: %d != %d", second.ID, first.ID)
	}

	var stored models.User
	if err := database.First(&stored, first.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Name != "New Name" || stored.AvatarURL != "https://example.com/new.png" {
		t.Errorf("profile not refreshed: name=%q avatar=%q", stored.Name, stored.AvatarURL)
	}
}

func TestAttachPublicUsersBatchesAndRedacts(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	posts := NewPostStore(database)

	author := newTestUser(t, database, "a@example.com", "author")
	p1, _ := posts.Create(author.ID, CreatePost{Title: "one", Text: "x"})
	p2, _ := posts.Create(author.ID, CreatePost{Title: "two", Text: "y"})
	orphan := &models.Post{UserID: 9999, Title: "ghost", Text: "z"}

	var queries int
	if err := database.Callback().Query().After("gorm:query").
		Register("test_count_queries", func(*gorm.DB) { queries++ }); err != nil {
		t.Fatalf("register callback: %v", err)
	}

	docs := []Authored{p1, p2, orphan}
	if err := users.AttachPublicUsers(docs); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if queries != 1 {
		t.Errorf("enrichment issued %d queries, want exactly 1", queries)
	}
	if p1.User == nil || p2.User == nil {
		t.Fatal("resolved authors must carry a user projection")
	}
	if p1.User.ID != author.ID || p1.User.Name != "author" {
		t.Errorf("projection = %+v", p1.User)
	}
	if orphan.User != nil {
		t.Errorf("unresolvable author must stay unannotated, got %+v", orphan.User)
	}
}

func TestAttachPublicUsersEmptyInput(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	if err := users.AttachPublicUsers(nil); err != nil {
		t.Fatalf("empty input: %v", err)
	}
}
