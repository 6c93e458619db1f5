package store

import (
	"errors"
	"testing"

	"mediaboard/internal/config"
	"mediaboard/internal/models"
)

func TestCatalogCreateValidatesCategory(t *testing.T) {
	database := newTestDB(t)
	catalog := NewCatalogStore(database, config.CatalogSortTitle)
	user := newTestUser(t, database, "a@example.com", "a")

	if _, err := catalog.Create(user.ID, CreateEntry{Category: "podcast", Title: "x"}); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown category: err = %v, want ErrInvalid", err)
	}
	if _, err := catalog.Create(user.ID, CreateEntry{Category: "movie", Title: " "}); !errors.Is(err, ErrInvalid) {
		t.Errorf("blank title: err = %v, want ErrInvalid", err)
	}

	entry, err := catalog.Create(user.ID, CreateEntry{Category: " Movie ", Title: "Alien", Author: "Scott", Year: "1979"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.Category != models.CategoryMovie {
		t.Errorf("category normalized to %q, want movie", entry.Category)
	}
}

func TestCatalogSortPolicies(t *testing.T) {
	database := newTestDB(t)
	user := newTestUser(t, database, "a@example.com", "a")

	byTitle := NewCatalogStore(database, config.CatalogSortTitle)
	byTitle.Create(user.ID, CreateEntry{Category: "book", Title: "Zen"})
	byTitle.Create(user.ID, CreateEntry{Category: "movie", Title: "Alien"})
	newest, _ := byTitle.Create(user.ID, CreateEntry{Category: "music", Title: "Kid A"})

	list, err := byTitle.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].Title != "Alien" || list[2].Title != "Zen" {
		t.Errorf("title sort order: %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}

	byDate := NewCatalogStore(database, config.CatalogSortNewest)
	list, err = byDate.List()
	if err != nil {
		t.Fatalf("list newest: %v", err)
	}
	if list[0].ID != newest.ID {
		t.Errorf("newest sort: first = %q, want %q", list[0].Title, newest.Title)
	}
}

func TestCatalogListByCategoryAppliesSameSort(t *testing.T) {
	database := newTestDB(t)
	catalog := NewCatalogStore(database, config.CatalogSortTitle)
	user := newTestUser(t, database, "a@example.com", "a")

	catalog.Create(user.ID, CreateEntry{Category: "book", Title: "Neuromancer"})
	catalog.Create(user.ID, CreateEntry{Category: "book", Title: "Accelerando"})
	catalog.Create(user.ID, CreateEntry{Category: "movie", Title: "Alien"})

	books, err := catalog.ListByCategory("Book")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("len = %d, want 2", len(books))
	}
	if books[0].Title != "Accelerando" {
		t.Errorf("first book = %q, want Accelerando", books[0].Title)
	}

	empty, err := catalog.ListByCategory("podcast")
	if err != nil {
		t.Fatalf("unknown category: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown category returned %d entries", len(empty))
	}
}

func TestCatalogDeleteIsSubmitterScoped(t *testing.T) {
	database := newTestDB(t)
	catalog := NewCatalogStore(database, config.CatalogSortTitle)
	owner := newTestUser(t, database, "a@example.com", "owner")
	other := newTestUser(t, database, "b@example.com", "other")

	entry, _ := catalog.Create(owner.ID, CreateEntry{Category: "music", Title: "Kid A"})

	if err := catalog.Delete(entry.ID, other.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("delete by non-submitter: err = %v, want ErrForbidden", err)
	}
	list, _ := catalog.List()
	if len(list) != 1 {
		t.Fatalf("entry vanished after forbidden delete")
	}

	if err := catalog.Delete(entry.ID, owner.ID); err != nil {
		t.Fatalf("delete by submitter: %v", err)
	}
	list, _ = catalog.List()
	if len(list) != 0 {
		t.Errorf("entry still present after delete")
	}
}
