package progress

import "FundLens/internal/model"

// Achievement is a badge unlocked by practice history.
type Achievement struct {
	ID          string
	Title       string
	Description string
}

var achievements = []struct {
	Achievement
	unlocked func(model.UserProgress) bool
}{
	{
		Achievement{ID: "dedicated-learner", Title: "Dedicated Learner", Description: "Completed 10+ practice attempts"},
		func(p model.UserProgress) bool { return p.TotalAttempts >= 10 },
	},
	{
		Achievement{ID: "on-fire", Title: "On Fire", Description: "3+ day streak"},
		func(p model.UserProgress) bool { return p.Streak >= 3 },
	},
	{
		Achievement{ID: "expert", Title: "Expert Level", Description: "Reached Level 5"},
		func(p model.UserProgress) bool { return p.Level >= 5 },
	},
}

// Achievements lists the badges p has unlocked, in display order.
func Achievements(p model.UserProgress) []Achievement {
	var out []Achievement
	for _, a := range achievements {
		if a.unlocked(p) {
			out = append(out, a.Achievement)
		}
	}
	return out
}

// Accuracy is the share of correct submissions, in percent.
func Accuracy(p model.UserProgress) float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.CorrectEstimates) / float64(p.TotalAttempts) * 100
}

// XPToNextLevel is the XP still needed to reach the next level.
func XPToNextLevel(p model.UserProgress) int {
	return LevelFor(p.XP)*xpPerLevel - p.XP
}
