package domain

// UserProfile holds free-form traits and preferences that shape the plan.
// Every field is optional.
type UserProfile struct {
	Traits      []string `json:"traits"`
	Medications []string `json:"medications"`
	Preferences []string `json:"preferences"`
	SleepGoal   string   `json:"sleep_goal"`
	Notes       string   `json:"notes"`
}

// IsEmpty reports whether no profile field carries a value.
func (p UserProfile) IsEmpty() bool {
	return len(p.Traits) == 0 && len(p.Medications) == 0 && len(p.Preferences) == 0 &&
		p.SleepGoal == "" && p.Notes == ""
}
