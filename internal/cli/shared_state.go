package cli

import "github.com/alexanderramin/jornada/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Journey is this run's copy of the journey path. Finished activities
	// mark their step completed here; it is not persisted.
	Journey []domain.JourneyStep

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	var steps []domain.JourneyStep
	if app.Catalog != nil {
		steps = append(steps, app.Catalog.Journey...)
	}
	return &SharedState{App: app, Journey: steps}
}

// User returns the signed-in user, or nil.
func (s *SharedState) User() *domain.User {
	return s.App.Auth.Session().User
}

// CompleteStep marks the step with id as completed.
func (s *SharedState) CompleteStep(id string) {
	for i := range s.Journey {
		if s.Journey[i].ID == id {
			s.Journey[i].Status = domain.StepCompleted
			return
		}
	}
}

// EarnedXP sums the XP of completed steps in this run.
func (s *SharedState) EarnedXP() int {
	return domain.EarnedXP(s.Journey)
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width for wrapped text.
func (s *SharedState) ContentWidth() int {
	w := s.Width - 4
	if w < 20 {
		return 60
	}
	return w
}
