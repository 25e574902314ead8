package testutil

import (
	"fmt"

	"github.com/alexanderramin/jornada/internal/domain"
)

// NewTestUser returns a user with predictable fields.
func NewTestUser(id string) *domain.User {
	return &domain.User{
		ID:    id,
		Name:  "User " + id,
		Email: fmt.Sprintf("user%s@example.com", id),
	}
}

// NewChecklistItems returns n mission items with ids m1..mn.
func NewChecklistItems(n int) []domain.ActivityItem {
	items := make([]domain.ActivityItem, n)
	for i := range items {
		items[i] = domain.ActivityItem{
			ID:    fmt.Sprintf("m%d", i+1),
			Title: fmt.Sprintf("Mission %d", i+1),
		}
	}
	return items
}

// NewQuizItems returns one four-option question per correct answer, with ids
// q1..qn.
func NewQuizItems(correct ...int) []domain.ActivityItem {
	items := make([]domain.ActivityItem, len(correct))
	for i, c := range correct {
		items[i] = domain.ActivityItem{
			ID:      fmt.Sprintf("q%d", i+1),
			Title:   fmt.Sprintf("Question %d", i+1),
			Options: []string{"A", "B", "C", "D"},
			Correct: c,
		}
	}
	return items
}

// NewReaderItems returns n verse items with ids v1..vn.
func NewReaderItems(n int) []domain.ActivityItem {
	items := make([]domain.ActivityItem, n)
	for i := range items {
		items[i] = domain.ActivityItem{
			ID:         fmt.Sprintf("v%d", i+1),
			Title:      fmt.Sprintf("Verse %d", i+1),
			Reference:  fmt.Sprintf("Book %d:1", i+1),
			Reflection: "Reflect.",
		}
	}
	return items
}
