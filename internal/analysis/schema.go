package analysis

import "github.com/alexanderramin/dayplan/internal/domain"

// Defaults for numeric fields the model left out.
const (
	DefaultTipDurationMin = 5
	DefaultConfidence     = 3
	DefaultEnergyLevel    = 5
)

var timelineSchema = schema[domain.TimelineEntry]{
	intField("id", indexDefault, nil, func(e *domain.TimelineEntry) *int { return &e.ID }),
	stringField("start", func(e *domain.TimelineEntry) *string { return &e.Start }),
	stringField("end", func(e *domain.TimelineEntry) *string { return &e.End }),
	stringField("title", func(e *domain.TimelineEntry) *string { return &e.Title }),
	enumField("priority", domain.ValidPriorities, domain.DefaultPriority, func(e *domain.TimelineEntry) *domain.Priority { return &e.Priority }),
	enumField("category", domain.ValidCategories, domain.DefaultCategory, func(e *domain.TimelineEntry) *domain.Category { return &e.Category }),
	intField("buffer_before", constDefault(0), nil, func(e *domain.TimelineEntry) *int { return &e.BufferBefore }).opt(),
	intField("buffer_after", constDefault(0), nil, func(e *domain.TimelineEntry) *int { return &e.BufferAfter }).opt(),
}

var tipSchema = schema[domain.Tip]{
	stringField("emoji", func(t *domain.Tip) *string { return &t.Emoji }).opt(),
	stringField("label", func(t *domain.Tip) *string { return &t.Label }, "tip"),
	stringField("reason", func(t *domain.Tip) *string { return &t.Reason }),
	intField("duration", constDefault(DefaultTipDurationMin), between(0, 24*60), func(t *domain.Tip) *int { return &t.Duration }),
}

var scheduleTipsSchema = schema[domain.ScheduleTips]{
	intField("schedule_id", indexDefault, nil, func(s *domain.ScheduleTips) *int { return &s.ScheduleID }, "id"),
	listField("tips", tipSchema, func(s *domain.ScheduleTips) *[]domain.Tip { return &s.Tips }),
}

var advisorCommentSchema = schema[domain.AdvisorComment]{
	stringField("name", func(a *domain.AdvisorComment) *string { return &a.Name }),
	stringField("initials", func(a *domain.AdvisorComment) *string { return &a.Initials }).opt(),
	stringField("comment", func(a *domain.AdvisorComment) *string { return &a.Comment }),
	stringField("target_schedule", func(a *domain.AdvisorComment) *string { return &a.TargetSchedule }).opt(),
}

var energyBlockSchema = schema[domain.EnergyBlock]{
	intField("hour", indexDefault, between(0, 23), func(e *domain.EnergyBlock) *int { return &e.Hour }),
	intField("level", constDefault(DefaultEnergyLevel), between(1, 10), func(e *domain.EnergyBlock) *int { return &e.Level }),
	stringField("label", func(e *domain.EnergyBlock) *string { return &e.Label }).opt(),
}

var briefingSchema = schema[domain.Briefing]{
	intField("id", indexDefault, nil, func(b *domain.Briefing) *int { return &b.ID }),
	stringField("title", func(b *domain.Briefing) *string { return &b.Title }),
	intField("confidence", constDefault(DefaultConfidence), between(1, 5), func(b *domain.Briefing) *int { return &b.Confidence }),
	stringsField("before", func(b *domain.Briefing) *[]string { return &b.Before }),
	stringsField("during", func(b *domain.Briefing) *[]string { return &b.During }),
	stringsField("after", func(b *domain.Briefing) *[]string { return &b.After }),
	stringField("transition", func(b *domain.Briefing) *string { return &b.Transition }).opt(),
	stringField("emotion_note", func(b *domain.Briefing) *string { return &b.EmotionNote }).opt(),
	boolField("is_family", func(b *domain.Briefing) *bool { return &b.IsFamily }).opt(),
}

var specialistSchema = schema[domain.SpecialistAdvice]{
	stringField("name", func(s *domain.SpecialistAdvice) *string { return &s.Name }),
	stringField("summary", func(s *domain.SpecialistAdvice) *string { return &s.Summary }),
	stringsField("points", func(s *domain.SpecialistAdvice) *[]string { return &s.Points }),
}

// resultSchema maps a model reply onto domain.AnalysisResult. Optional
// sections only appear in long-detail replies, so their absence is not
// reported as a default.
var resultSchema = schema[domain.AnalysisResult]{
	listField("timeline", timelineSchema, func(r *domain.AnalysisResult) *[]domain.TimelineEntry { return &r.Timeline }),
	listField("schedule_tips", scheduleTipsSchema, func(r *domain.AnalysisResult) *[]domain.ScheduleTips { return &r.ScheduleTips }, "neuro_tips"),
	listField("advisor_comments", advisorCommentSchema, func(r *domain.AnalysisResult) *[]domain.AdvisorComment { return &r.AdvisorComments }, "advisors"),
	stringField("overall_tip", func(r *domain.AnalysisResult) *string { return &r.OverallTip }),
	listField("energy_chart", energyBlockSchema, func(r *domain.AnalysisResult) *[]domain.EnergyBlock { return &r.EnergyChart }).opt(),
	listField("briefings", briefingSchema, func(r *domain.AnalysisResult) *[]domain.Briefing { return &r.Briefings }).opt(),
	objectField("specialist_advice", specialistSchema, func(r *domain.AnalysisResult) **domain.SpecialistAdvice { return &r.SpecialistAdvice }).opt(),
	stringField("overload_warning", func(r *domain.AnalysisResult) *string { return &r.OverloadWarning }).opt(),
	stringsField("recovery_suggestions", func(r *domain.AnalysisResult) *[]string { return &r.RecoverySuggestions }).opt(),
	stringField("rest_mode_tip", func(r *domain.AnalysisResult) *string { return &r.RestModeTip }).opt(),
}
