package domain

// ActivityMode selects the response and summary rules of an activity.
type ActivityMode string

const (
	ModeChecklist ActivityMode = "checklist"
	ModeQuiz      ActivityMode = "quiz"
	ModeReader    ActivityMode = "reader"
)

// NoOption marks a response or selection without a chosen option.
const NoOption = -1

// ActivityItem is one fixed unit of an activity: a mission, a quiz question
// or a verse with its reflection.
type ActivityItem struct {
	ID         string   `yaml:"id" validate:"required"`
	Title      string   `yaml:"title" validate:"required"`
	Reference  string   `yaml:"reference,omitempty"`
	Reflection string   `yaml:"reflection,omitempty"`
	Options    []string `yaml:"options,omitempty" validate:"omitempty,min=2,dive,required"`
	Correct    int      `yaml:"correct,omitempty" validate:"gte=0"`
}

// Clone returns a deep copy of the item.
func (i ActivityItem) Clone() ActivityItem {
	out := i
	if i.Options != nil {
		out.Options = append([]string(nil), i.Options...)
	}
	return out
}

// Response is what was recorded for an item. Checklist and reader items use
// Done; quiz items use Option.
type Response struct {
	Done   bool
	Option int
}

// Summary is the terminal aggregate of an activity run.
type Summary struct {
	Mode           ActivityMode
	CompletedCount int
	Score          int
	TotalCount     int
}

// Percent returns the share of the total that was completed (or scored, for
// quizzes) as a 0-100 value.
func (s Summary) Percent() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	n := s.CompletedCount
	if s.Mode == ModeQuiz {
		n = s.Score
	}
	return float64(n) / float64(s.TotalCount) * 100
}
