package domain

// Achievement is a milestone on the conquest board.
type Achievement struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	XPReward    int    `yaml:"xp_reward" validate:"gte=0"`
	Completed   bool   `yaml:"completed"`
}

// AchievementProgress summarizes a conquest board.
type AchievementProgress struct {
	Completed int
	Total     int
	XP        int
}

// Percent returns the completed share rounded to a whole percent.
func (p AchievementProgress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Completed*100 + p.Total/2) / p.Total
}

// SummarizeAchievements counts completed achievements and sums their XP
// rewards.
func SummarizeAchievements(list []Achievement) AchievementProgress {
	p := AchievementProgress{Total: len(list)}
	for _, a := range list {
		if a.Completed {
			p.Completed++
			p.XP += a.XPReward
		}
	}
	return p
}
