package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/fnoltriage/internal/model"
	"gopkg.in/yaml.v3"
)

// Renderer writes triage results to files and the terminal.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the result as indented JSON.
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderYAML writes the result as YAML.
func (r *Renderer) RenderYAML(result *model.Result, path string) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable triage report.
func (r *Renderer) RenderMarkdown(result *model.Result, path string) error {
	var b strings.Builder

	b.WriteString("# FNOL Triage Report\n\n")
	fmt.Fprintf(&b, "**Recommended route:** %s\n\n", result.RecommendedRoute)
	fmt.Fprintf(&b, "**Reasoning:** %s\n\n", result.Reasoning)

	b.WriteString("## Extracted Fields\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	for _, row := range fieldRows(result.ExtractedFields) {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
	}
	b.WriteString("\n")

	b.WriteString("## Missing Mandatory Fields\n\n")
	if len(result.MissingFields) == 0 {
		b.WriteString("None.\n")
	} else {
		for _, f := range result.MissingFields {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
	}
	b.WriteString("\n")

	if result.AdjusterNote != nil && result.AdjusterNote.NoteMD != "" {
		b.WriteString("## Adjuster Note (generated)\n\n")
		b.WriteString(result.AdjusterNote.NoteMD)
		b.WriteString("\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by fnoltriage. Routing is rule-based and deterministic;\n")
		b.WriteString("the reasoning above names the exact data that triggered the route.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout.
func (r *Renderer) RenderSummary(result *model.Result) {
	fmt.Printf("Route:     %s\n", result.RecommendedRoute)
	fmt.Printf("Reasoning: %s\n", result.Reasoning)
	if len(result.MissingFields) > 0 {
		fmt.Printf("Missing:   %s\n", strings.Join(result.MissingFields, ", "))
	}
}

// fieldRows flattens present fields into (name, value) pairs in declaration
// order for stable report output.
func fieldRows(rec model.ExtractedRecord) [][2]string {
	rows := [][2]string{}
	add := func(name, val string) {
		if val != "" {
			rows = append(rows, [2]string{name, val})
		}
	}
	add(model.FieldPolicyNumber, rec.PolicyNumber)
	add(model.FieldIncidentDate, rec.IncidentDate)
	add(model.FieldIncidentLocation, rec.IncidentLocation)
	add(model.FieldIncidentDescription, rec.IncidentDescription)
	add(model.FieldClaimantName, rec.ClaimantName)
	add(model.FieldClaimType, rec.ClaimType)
	add(model.FieldVehicleMake, rec.VehicleMake)
	add(model.FieldVehicleModel, rec.VehicleModel)
	add(model.FieldVIN, rec.VIN)
	if rec.EstimatedDamage != nil {
		rows = append(rows, [2]string{model.FieldEstimatedDamage, fmt.Sprintf("%.2f", *rec.EstimatedDamage)})
	}
	return rows
}
