package model

// Route is the categorical outcome of claim triage.
type Route string

const (
	RouteManualReview  Route = "Manual review"
	RouteInvestigation Route = "Investigation Flag"
	RouteSpecialist    Route = "Specialist Queue"
	RouteFastTrack     Route = "Fast-track"
	RouteStandard      Route = "Standard"
)

// RoutingDecision is the routing outcome for one claim, created once per
// request and not retained.
type RoutingDecision struct {
	Route     Route  `json:"route"`
	Reasoning string `json:"reasoning"`
}

// Result is the complete output of processing one FNOL document.
// This is the wire shape serialized by the HTTP shell and the CLI.
type Result struct {
	ExtractedFields  ExtractedRecord `json:"extractedFields"`
	MissingFields    []string        `json:"missingFields"`
	RecommendedRoute Route           `json:"recommendedRoute"`
	Reasoning        string          `json:"reasoning"`

	// AdjusterNote holds the optional LLM-generated note. It is produced
	// after routing and never influences the decision.
	AdjusterNote *AdjusterNote `json:"adjusterNote,omitempty"`
}

// AdjusterNote is an optional LLM-generated summary for human adjusters.
type AdjusterNote struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	NoteMD   string `json:"note_md,omitempty"`
}
