package router

import "golf-coach/internal/prompt"

// Source records which parse strategy produced a Decision.
type Source string

const (
	SourceStrict   Source = "strict"
	SourceFenced   Source = "fenced"
	SourceRepaired Source = "repaired"
	SourceHJSON    Source = "hjson"
	SourceRegex    Source = "regex"
	SourceFallback Source = "fallback"
)

// Decision is the routing outcome for one request.
// Destination is a registered name or prompt.DefaultDestination.
type Decision struct {
	Destination string `json:"destination"`
	NextInput   string `json:"next_input"`
	Source      Source `json:"source"`
}

func (d Decision) IsDefault() bool {
	return d.Destination == prompt.DefaultDestination
}

// rawDecision is what the model said before normalization.
type rawDecision struct {
	destination string
	nextInputs  string
}
