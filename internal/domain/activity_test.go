package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityItemClone_CopiesOptions(t *testing.T) {
	item := ActivityItem{ID: "q1", Title: "Q", Options: []string{"a", "b"}, Correct: 1}

	c := item.Clone()
	c.Options[0] = "z"

	assert.Equal(t, "a", item.Options[0])
	assert.Equal(t, 1, c.Correct)
}

func TestSummaryPercent(t *testing.T) {
	assert.Equal(t, 50.0, Summary{Mode: ModeChecklist, CompletedCount: 3, TotalCount: 6}.Percent())
	assert.Equal(t, 75.0, Summary{Mode: ModeQuiz, CompletedCount: 4, Score: 3, TotalCount: 4}.Percent())
	assert.Equal(t, 0.0, Summary{Mode: ModeReader}.Percent())
}

func TestStepKindMode(t *testing.T) {
	cases := map[StepKind]ActivityMode{
		StepMission: ModeChecklist,
		StepQuiz:    ModeQuiz,
		StepRead:    ModeReader,
	}
	for kind, want := range cases {
		got, ok := kind.Mode()
		assert.True(t, ok, "kind %s", kind)
		assert.Equal(t, want, got)
	}

	_, ok := StepChat.Mode()
	assert.False(t, ok)
}

func TestEarnedXP_CountsCompletedOnly(t *testing.T) {
	steps := []JourneyStep{
		{ID: "1", Status: StepCompleted, XP: 20},
		{ID: "2", Status: StepCurrent, XP: 15},
		{ID: "3", Status: StepLocked, XP: 30},
		{ID: "4", Status: StepCompleted, XP: 5},
	}
	assert.Equal(t, 25, EarnedXP(steps))
}
