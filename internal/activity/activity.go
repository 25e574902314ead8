// Package activity implements the stepwise activity state machine shared by
// missions (checklist), quizzes and verse reading.
package activity

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/jornada/internal/domain"
)

var (
	// ErrUnknownMode is returned for a mode without a rule.
	ErrUnknownMode = errors.New("unknown activity mode")
	// ErrNoItems is returned when an activity is created without items.
	ErrNoItems = errors.New("activity has no items")
)

// Activity is one run through a fixed list of items. It is either active,
// with a cursor and recorded responses, or completed with a frozen summary.
// An Activity is not safe for concurrent use.
type Activity struct {
	mode      domain.ActivityMode
	rule      modeRule
	canonical []domain.ActivityItem

	items     []domain.ActivityItem
	cursor    int
	responses map[string]domain.Response
	selection int
	completed bool
	summary   domain.Summary
}

// New creates an active activity over a copy of items.
func New(mode domain.ActivityMode, items []domain.ActivityItem) (*Activity, error) {
	rule, ok := rules[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	a := &Activity{
		mode:      mode,
		rule:      rule,
		canonical: cloneItems(items),
	}
	a.Reset()
	return a, nil
}

// Reset returns the activity to its first item with no responses, from any
// state.
func (a *Activity) Reset() {
	a.items = cloneItems(a.canonical)
	a.cursor = 0
	a.responses = make(map[string]domain.Response)
	a.selection = domain.NoOption
	a.completed = false
	a.summary = domain.Summary{}
}

// Respond records a response for itemID. It reports whether anything
// changed; invalid input and completed activities are no-ops.
func (a *Activity) Respond(itemID string, option int) bool {
	if a.completed {
		return false
	}
	idx := a.indexOf(itemID)
	if idx < 0 {
		return false
	}
	return a.rule.respond(a, idx, option)
}

// Select highlights an option of the current item without recording it.
func (a *Activity) Select(option int) bool {
	if a.completed || option < 0 || option >= len(a.items[a.cursor].Options) {
		return false
	}
	a.selection = option
	return true
}

// Selection returns the highlighted option, or domain.NoOption.
func (a *Activity) Selection() int {
	return a.selection
}

// Advance moves past the current item, completing the activity at the end.
// It reports whether anything changed.
func (a *Activity) Advance() bool {
	if a.completed {
		return false
	}
	return a.rule.advance(a)
}

// Close completes the activity and returns its summary. Closing a completed
// activity returns the existing summary.
func (a *Activity) Close() domain.Summary {
	if !a.completed {
		a.complete()
	}
	return a.summary
}

// Mode returns the mode the activity was created with.
func (a *Activity) Mode() domain.ActivityMode { return a.mode }

// Cursor returns the 0-based index of the presented item.
func (a *Activity) Cursor() int { return a.cursor }

// Total returns the number of items.
func (a *Activity) Total() int { return len(a.items) }

// IsComplete reports whether the activity reached its summary.
func (a *Activity) IsComplete() bool { return a.completed }

// Items returns a copy of the items of this run.
func (a *Activity) Items() []domain.ActivityItem {
	return cloneItems(a.items)
}

// CurrentItem returns the item under the cursor.
func (a *Activity) CurrentItem() domain.ActivityItem {
	return a.items[a.cursor].Clone()
}

// Responses returns a copy of the recorded responses keyed by item id.
func (a *Activity) Responses() map[string]domain.Response {
	out := make(map[string]domain.Response, len(a.responses))
	for k, v := range a.responses {
		out[k] = v
	}
	return out
}

// Response returns the response recorded for itemID, if any.
func (a *Activity) Response(itemID string) (domain.Response, bool) {
	r, ok := a.responses[itemID]
	return r, ok
}

// Summary returns the frozen summary and true once the activity completed.
func (a *Activity) Summary() (domain.Summary, bool) {
	return a.summary, a.completed
}

// ProgressPercent is the share of items with a recorded response, 0-100.
func (a *Activity) ProgressPercent() float64 {
	return float64(a.rule.responded(a)) / float64(len(a.items)) * 100
}

func (a *Activity) complete() {
	a.summary = a.rule.summarize(a)
	a.summary.Mode = a.mode
	a.summary.TotalCount = len(a.items)
	a.completed = true
	a.selection = domain.NoOption
}

func (a *Activity) last() bool {
	return a.cursor == len(a.items)-1
}

func (a *Activity) indexOf(itemID string) int {
	for i, it := range a.items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func cloneItems(items []domain.ActivityItem) []domain.ActivityItem {
	out := make([]domain.ActivityItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
