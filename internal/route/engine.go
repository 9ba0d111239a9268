// Package route maps an extracted FNOL record to a triage decision.
//
// Routing is a decision list: an ordered set of rules evaluated top-down
// with first match wins. Missing mandatory fields dominate every other
// rule, so bad data always converges to an explainable manual-review
// outcome instead of a failure.
package route

import (
	"fmt"
	"strings"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// investigationKeywords trigger the Investigation Flag route when they
// appear in the incident description. Order is fixed so the quoted keyword
// in the reasoning is deterministic.
var investigationKeywords = []string{"fraud", "inconsistent", "staged"}

// Input carries everything a routing pass needs. Threshold is injected per
// invocation so runtime configuration overrides take effect between
// requests without a restart.
type Input struct {
	Record    model.ExtractedRecord
	Missing   []string
	Threshold float64
}

// rule is one entry of the decision list: a route plus a predicate that
// reports whether the rule applies and, if so, the reasoning for it.
type rule struct {
	route model.Route
	match func(in Input) (bool, string)
}

var rules = []rule{
	{model.RouteManualReview, matchMissingFields},
	{model.RouteInvestigation, matchInvestigationKeyword},
	{model.RouteSpecialist, matchInjury},
	{model.RouteFastTrack, matchBelowThreshold},
	{model.RouteStandard, matchStandard},
}

// Decide runs the decision list over the input and returns the first
// matching rule's decision. It is a pure function: deterministic, no side
// effects, and total (the final rule always matches).
func Decide(in Input) model.RoutingDecision {
	for _, r := range rules {
		if ok, reasoning := r.match(in); ok {
			return model.RoutingDecision{Route: r.route, Reasoning: reasoning}
		}
	}
	// Unreachable: matchStandard always matches.
	return model.RoutingDecision{Route: model.RouteStandard, Reasoning: "No specialized condition applied; routed to standard workflow."}
}

func matchMissingFields(in Input) (bool, string) {
	if len(in.Missing) == 0 {
		return false, ""
	}
	return true, fmt.Sprintf("Missing mandatory field(s): %s. Cannot auto-route.", strings.Join(in.Missing, ", "))
}

func matchInvestigationKeyword(in Input) (bool, string) {
	desc := strings.ToLower(in.Record.IncidentDescription)
	for _, kw := range investigationKeywords {
		if strings.Contains(desc, kw) {
			return true, fmt.Sprintf("Description contains keyword %q; flagged for investigation.", kw)
		}
	}
	return false, ""
}

func matchInjury(in Input) (bool, string) {
	if in.Record.ClaimType != string(model.ClaimTypeInjury) {
		return false, ""
	}
	return true, "Claim type is injury; routed to specialist queue."
}

func matchBelowThreshold(in Input) (bool, string) {
	d := in.Record.EstimatedDamage
	if d == nil || *d >= in.Threshold {
		return false, ""
	}
	return true, fmt.Sprintf("Estimated damage (%.1f) is below threshold (%.1f); eligible for fast-track.", *d, in.Threshold)
}

func matchStandard(in Input) (bool, string) {
	if in.Record.EstimatedDamage == nil {
		return true, "No specialized condition applied; damage amount unknown; routed to standard workflow."
	}
	return true, "No specialized condition applied; routed to standard workflow."
}
