// Package llm generates optional adjuster-facing notes from finished triage
// results. Note generation runs strictly after routing and never feeds back
// into extraction or the decision: a note can fail or be disabled without
// changing any triage output.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// NoteGenerator drafts a short Markdown note summarizing a triage result.
type NoteGenerator struct {
	provider  Provider
	modelName string
	maxTokens int
}

// NewNoteGenerator creates a generator. Returns nil when the configuration
// disables LLM notes.
func NewNoteGenerator(cfg model.LLMConfig) (*NoteGenerator, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 400
	}
	return &NoteGenerator{
		provider:  provider,
		modelName: cfg.Model,
		maxTokens: maxTokens,
	}, nil
}

// Generate produces an adjuster note for the result. The routing decision
// and reasoning are inputs to the note, never the other way around.
func (g *NoteGenerator) Generate(ctx context.Context, result *model.Result) (*model.AdjusterNote, error) {
	text, err := g.provider.Complete(ctx, BuildPrompt(result), g.maxTokens)
	if err != nil {
		return nil, err
	}
	return &model.AdjusterNote{
		Provider: g.provider.Name(),
		Model:    g.modelName,
		NoteMD:   strings.TrimSpace(text),
	}, nil
}

// BuildPrompt renders the triage result into the note prompt. Only
// extracted data and the already-made decision are included.
func BuildPrompt(result *model.Result) string {
	var b strings.Builder

	b.WriteString("Write a short note (under 120 words) for the claims adjuster who will handle this First Notice of Loss.\n")
	b.WriteString("Summarize what happened and what to verify first. Use only the data below.\n\n")

	fmt.Fprintf(&b, "Routing decision (already made, do not change): %s\n", result.RecommendedRoute)
	fmt.Fprintf(&b, "Reasoning: %s\n\n", result.Reasoning)

	b.WriteString("Extracted fields:\n")
	rec := result.ExtractedFields
	writeField(&b, model.FieldPolicyNumber, rec.PolicyNumber)
	writeField(&b, model.FieldIncidentDate, rec.IncidentDate)
	writeField(&b, model.FieldIncidentLocation, rec.IncidentLocation)
	writeField(&b, model.FieldIncidentDescription, rec.IncidentDescription)
	writeField(&b, model.FieldClaimantName, rec.ClaimantName)
	writeField(&b, model.FieldClaimType, rec.ClaimType)
	writeField(&b, model.FieldVehicleMake, rec.VehicleMake)
	writeField(&b, model.FieldVehicleModel, rec.VehicleModel)
	writeField(&b, model.FieldVIN, rec.VIN)
	if rec.EstimatedDamage != nil {
		fmt.Fprintf(&b, "- %s: %.2f\n", model.FieldEstimatedDamage, *rec.EstimatedDamage)
	}

	if len(result.MissingFields) > 0 {
		fmt.Fprintf(&b, "\nMissing mandatory fields: %s\n", strings.Join(result.MissingFields, ", "))
	}

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value != "" {
		fmt.Fprintf(b, "- %s: %s\n", name, value)
	}
}
