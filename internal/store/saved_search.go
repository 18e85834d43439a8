package store

import (
	"time"

	"github.com/flavono123/curio/internal/registry"
)

// SavedSearch is a named search criteria kept across sessions.
type SavedSearch struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Criteria  registry.SearchCriteria `json:"criteria"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
