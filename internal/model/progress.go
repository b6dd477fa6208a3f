package model

// DateLayout is the calendar-date format used for LastPracticeDate.
const DateLayout = "2006-01-02"

// UserProgress is the persisted practice history of the single local user.
type UserProgress struct {
	TotalAttempts      int      `json:"totalAttempts"`
	CorrectEstimates   int      `json:"correctEstimates"`
	Streak             int      `json:"streak"`
	LastPracticeDate   string   `json:"lastPracticeDate"`
	XP                 int      `json:"xp"`
	Level              int      `json:"level"`
	ScenariosCompleted []string `json:"scenariosCompleted"`
}
