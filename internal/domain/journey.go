package domain

type StepKind string

const (
	StepChat    StepKind = "chat"
	StepMission StepKind = "mission"
	StepQuiz    StepKind = "quiz"
	StepRead    StepKind = "read"
)

type StepStatus string

const (
	StepLocked    StepStatus = "locked"
	StepCurrent   StepStatus = "current"
	StepCompleted StepStatus = "completed"
)

// JourneyStep is one node on the journey path.
type JourneyStep struct {
	ID     string     `yaml:"id" validate:"required"`
	Kind   StepKind   `yaml:"kind" validate:"required,oneof=chat mission quiz read"`
	Status StepStatus `yaml:"status" validate:"required,oneof=locked current completed"`
	XP     int        `yaml:"xp" validate:"gte=0"`
	Icon   string     `yaml:"icon"`
}

// Mode returns the activity mode a step opens, and false for steps that do
// not open an activity (chat).
func (k StepKind) Mode() (ActivityMode, bool) {
	switch k {
	case StepMission:
		return ModeChecklist, true
	case StepQuiz:
		return ModeQuiz, true
	case StepRead:
		return ModeReader, true
	default:
		return "", false
	}
}

// EarnedXP sums the XP of completed steps.
func EarnedXP(steps []JourneyStep) int {
	total := 0
	for _, s := range steps {
		if s.Status == StepCompleted {
			total += s.XP
		}
	}
	return total
}
