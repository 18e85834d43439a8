package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flavono123/curio/internal/registry"
)

func TestStore(t *testing.T) {
	// Use temp directory for tests
	tmpDir := t.TempDir()
	store := &Store{
		path: filepath.Join(tmpDir, "test-searches.json"),
		data: &savedSearchStore{Searches: []SavedSearch{}},
	}

	criteria := registry.SearchCriteria{Attribute: "name", Value: "cat"}

	t.Run("Create", func(t *testing.T) {
		search, err := store.Create("Cats", criteria)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if search.Name != "Cats" {
			t.Errorf("expected name 'Cats', got %q", search.Name)
		}
		if search.ID == "" {
			t.Error("expected non-empty ID")
		}
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := store.Create("Cats", criteria)
		if err != ErrDuplicateName {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("SameNameDifferentAttribute", func(t *testing.T) {
		other := registry.SearchCriteria{Attribute: "labels", Value: "cat"}
		_, err := store.Create("Cats", other)
		if err != nil {
			t.Fatalf("expected no error for same name on another attribute, got %v", err)
		}
	})

	t.Run("ListAll", func(t *testing.T) {
		all := store.ListAll()
		if len(all) != 2 {
			t.Errorf("expected 2 searches, got %d", len(all))
		}
	})

	t.Run("ListByAttribute", func(t *testing.T) {
		searches := store.ListByAttribute("name")
		if len(searches) != 1 {
			t.Errorf("expected 1 search for the name attribute, got %d", len(searches))
		}
	})

	t.Run("Get", func(t *testing.T) {
		all := store.ListAll()
		search, err := store.Get(all[0].ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if search.Name != all[0].Name {
			t.Errorf("expected name %q, got %q", all[0].Name, search.Name)
		}
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := store.Get("nonexistent")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Rename", func(t *testing.T) {
		all := store.ListAll()
		search, err := store.Rename(all[0].ID, "All cats")
		if err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		if search.Name != "All cats" {
			t.Errorf("expected name 'All cats', got %q", search.Name)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		// Create new store and load
		store2 := &Store{
			path: store.path,
			data: &savedSearchStore{Searches: []SavedSearch{}},
		}
		if err := store2.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		all := store2.ListAll()
		if len(all) != 2 {
			t.Errorf("expected 2 searches after load, got %d", len(all))
		}
		if all[0].Criteria != criteria {
			t.Errorf("expected criteria %v after load, got %v", criteria, all[0].Criteria)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		all := store.ListAll()
		if err := store.Delete(all[0].ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		remaining := store.ListAll()
		if len(remaining) != 1 {
			t.Errorf("expected 1 search after delete, got %d", len(remaining))
		}
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		err := store.Delete("nonexistent")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("LoadNonExistentFile", func(t *testing.T) {
		store3 := &Store{
			path: filepath.Join(tmpDir, "nonexistent.json"),
			data: &savedSearchStore{Searches: []SavedSearch{}},
		}
		if err := store3.Load(); err != nil {
			t.Fatalf("Load should not fail for non-existent file: %v", err)
		}
		if len(store3.ListAll()) != 0 {
			t.Error("expected empty searches for non-existent file")
		}
	})

	t.Run("LoadCorruptedFile", func(t *testing.T) {
		corruptPath := filepath.Join(tmpDir, "corrupted.json")
		if err := os.WriteFile(corruptPath, []byte("not valid json"), 0644); err != nil {
			t.Fatalf("failed to write corrupted file: %v", err)
		}

		store4 := &Store{
			path: corruptPath,
			data: &savedSearchStore{Searches: []SavedSearch{}},
		}
		if err := store4.Load(); err != nil {
			t.Fatalf("Load should handle corrupted file gracefully: %v", err)
		}
		if len(store4.ListAll()) != 0 {
			t.Error("expected empty searches after loading corrupted file")
		}
	})
}
