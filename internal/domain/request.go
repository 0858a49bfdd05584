package domain

// MaxAdvisors caps how many advisors participate in one request.
const MaxAdvisors = 3

// AdvisorSpec is a named perspective voiced in the result. Custom advisors
// supplied as free text carry an empty ID.
type AdvisorSpec struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	NameEn      string `json:"name_en,omitempty" yaml:"name_en"`
	Initials    string `json:"initials,omitempty" yaml:"initials"`
	Style       string `json:"style" yaml:"style"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// PromptRequest is the immutable input bundle handed to the prompt assembler.
type PromptRequest struct {
	Records   []ScheduleRecord
	Energy    EnergyLevel
	Advisors  []AdvisorSpec
	Profile   UserProfile
	Detail    DetailMode
	IsRestDay bool
}

// AdvisorIDs returns the ids of the request's advisors, using the name for
// custom advisors so they still contribute to the cache fingerprint.
func (r PromptRequest) AdvisorIDs() []string {
	ids := make([]string, 0, len(r.Advisors))
	for _, a := range r.Advisors {
		ids = append(ids, CoalesceStr(a.ID, "custom:"+a.Name))
	}
	return ids
}
