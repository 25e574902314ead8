package activity

import "github.com/alexanderramin/jornada/internal/domain"

// modeRule supplies the per-mode behavior over the shared cursor and
// response skeleton of an Activity.
type modeRule interface {
	respond(a *Activity, idx, option int) bool
	advance(a *Activity) bool
	summarize(a *Activity) domain.Summary
	responded(a *Activity) int
}

var rules = map[domain.ActivityMode]modeRule{
	domain.ModeChecklist: checklistRule{},
	domain.ModeQuiz:      quizRule{},
	domain.ModeReader:    readerRule{},
}

// checklistRule toggles items in any order and never advances.
type checklistRule struct{}

func (checklistRule) respond(a *Activity, idx, _ int) bool {
	id := a.items[idx].ID
	r := a.responses[id]
	r.Done = !r.Done
	r.Option = domain.NoOption
	a.responses[id] = r
	return true
}

func (checklistRule) advance(*Activity) bool { return false }

func (checklistRule) summarize(a *Activity) domain.Summary {
	return domain.Summary{CompletedCount: countDone(a)}
}

func (checklistRule) responded(a *Activity) int { return countDone(a) }

// quizRule accepts one final answer per question, in cursor order.
type quizRule struct{}

func (quizRule) respond(a *Activity, idx, option int) bool {
	if idx != a.cursor {
		return false
	}
	item := a.items[idx]
	if option < 0 || option >= len(item.Options) {
		return false
	}
	if _, answered := a.responses[item.ID]; answered {
		return false
	}
	a.responses[item.ID] = domain.Response{Option: option}
	a.selection = option
	return true
}

func (quizRule) advance(a *Activity) bool {
	if _, answered := a.responses[a.items[a.cursor].ID]; !answered {
		return false
	}
	if a.last() {
		a.complete()
		return true
	}
	a.cursor++
	a.selection = domain.NoOption
	return true
}

func (quizRule) summarize(a *Activity) domain.Summary {
	score, answered := 0, 0
	for _, it := range a.items {
		r, ok := a.responses[it.ID]
		if !ok {
			continue
		}
		answered++
		if r.Option == it.Correct {
			score++
		}
	}
	return domain.Summary{CompletedCount: answered, Score: score}
}

func (quizRule) responded(a *Activity) int { return len(a.responses) }

// readerRule walks the items in order; reaching the last one completes the
// run because every item has then been shown.
type readerRule struct{}

func (readerRule) respond(*Activity, int, int) bool { return false }

func (readerRule) advance(a *Activity) bool {
	markRead(a)
	if !a.last() {
		a.cursor++
		a.selection = domain.NoOption
	}
	if a.last() {
		markRead(a)
		a.complete()
	}
	return true
}

func (readerRule) summarize(a *Activity) domain.Summary {
	return domain.Summary{CompletedCount: countDone(a)}
}

func (readerRule) responded(a *Activity) int { return countDone(a) }

func markRead(a *Activity) {
	a.responses[a.items[a.cursor].ID] = domain.Response{Done: true, Option: domain.NoOption}
}

func countDone(a *Activity) int {
	n := 0
	for _, r := range a.responses {
		if r.Done {
			n++
		}
	}
	return n
}
