package domain

// AnalysisResult is the normalized plan produced from a model reply. After
// normalization every slice is non-nil and every enum holds a valid value.
type AnalysisResult struct {
	Timeline            []TimelineEntry   `json:"timeline"`
	ScheduleTips        []ScheduleTips    `json:"schedule_tips"`
	AdvisorComments     []AdvisorComment  `json:"advisor_comments"`
	OverallTip          string            `json:"overall_tip"`
	EnergyChart         []EnergyBlock     `json:"energy_chart"`
	Briefings           []Briefing        `json:"briefings"`
	SpecialistAdvice    *SpecialistAdvice `json:"specialist_advice,omitempty"`
	OverloadWarning     string            `json:"overload_warning"`
	RecoverySuggestions []string          `json:"recovery_suggestions"`
	RestModeTip         string            `json:"rest_mode_tip"`

	// ParseFailed marks a degraded result built from unparseable model text.
	ParseFailed bool `json:"parse_failed"`
}

// TimelineEntry is one block of the model's proposed timeline. ID is the
// join key used by ScheduleTips and Briefings.
type TimelineEntry struct {
	ID           int      `json:"id"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Title        string   `json:"title"`
	Priority     Priority `json:"priority"`
	Category     Category `json:"category"`
	BufferBefore int      `json:"buffer_before"`
	BufferAfter  int      `json:"buffer_after"`
}

// ScheduleTips groups tips for a single timeline entry.
type ScheduleTips struct {
	ScheduleID int   `json:"schedule_id"`
	Tips       []Tip `json:"tips"`
}

type Tip struct {
	Emoji    string `json:"emoji"`
	Label    string `json:"label"`
	Reason   string `json:"reason"`
	Duration int    `json:"duration"` // minutes
}

type AdvisorComment struct {
	Name           string `json:"name"`
	Initials       string `json:"initials"`
	Comment        string `json:"comment"`
	TargetSchedule string `json:"target_schedule"`
}

// EnergyBlock is one point of the predicted energy curve (level 1-10).
type EnergyBlock struct {
	Hour  int    `json:"hour"`
	Level int    `json:"level"`
	Label string `json:"label"`
}

// Briefing is the before/during/after guidance for one timeline entry.
type Briefing struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Confidence  int      `json:"confidence"` // 1-5
	Before      []string `json:"before"`
	During      []string `json:"during"`
	After       []string `json:"after"`
	Transition  string   `json:"transition"`
	EmotionNote string   `json:"emotion_note"`
	IsFamily    bool     `json:"is_family"`
}

type SpecialistAdvice struct {
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}

// EmptyResult returns a result with every collection initialized.
func EmptyResult() AnalysisResult {
	return AnalysisResult{
		Timeline:            []TimelineEntry{},
		ScheduleTips:        []ScheduleTips{},
		AdvisorComments:     []AdvisorComment{},
		EnergyChart:         []EnergyBlock{},
		Briefings:           []Briefing{},
		RecoverySuggestions: []string{},
	}
}

// TipsFor returns the tips joined to a timeline entry id. Dangling
// references are not an error; unmatched ids simply return nil.
func (r AnalysisResult) TipsFor(scheduleID int) []Tip {
	for _, st := range r.ScheduleTips {
		if st.ScheduleID == scheduleID {
			return st.Tips
		}
	}
	return nil
}
