package model

// NarrativeAnalysis is the optional AI-generated commentary attached to a
// report. Every field is optional; an absent analysis never blocks report
// generation.
type NarrativeAnalysis struct {
	Summary         string   `json:"summary,omitempty"`
	Insights        []string `json:"insights,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	Improvements    []string `json:"improvements,omitempty"`
}

// IsEmpty reports whether the analysis carries no content at all.
func (a *NarrativeAnalysis) IsEmpty() bool {
	if a == nil {
		return true
	}
	return a.Summary == "" && len(a.Insights) == 0 && len(a.Recommendations) == 0 &&
		len(a.Strengths) == 0 && len(a.Improvements) == 0
}
