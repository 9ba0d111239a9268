package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/ppiankov/fnoltriage/internal/extract"
	"github.com/ppiankov/fnoltriage/internal/llm"
	"github.com/ppiankov/fnoltriage/internal/model"
	"github.com/ppiankov/fnoltriage/internal/route"
)

// ThresholdFunc returns the current fast-track damage threshold. It is
// called once per Process invocation, so configuration reloads are picked
// up between requests without restarting.
type ThresholdFunc func() float64

// Pipeline orchestrates the two-stage transform: raw text goes through the
// extractor, its output through the routing engine. Both stages are pure,
// so a single Pipeline is safe for concurrent use.
type Pipeline struct {
	extractor *extract.Extractor
	threshold ThresholdFunc
	notes     *llm.NoteGenerator // optional, nil when disabled
}

// New creates a pipeline with a fixed threshold.
func New(threshold float64) *Pipeline {
	return NewWithSource(func() float64 { return threshold })
}

// NewWithSource creates a pipeline whose threshold is re-read per request.
func NewWithSource(threshold ThresholdFunc) *Pipeline {
	return &Pipeline{
		extractor: extract.NewExtractor(),
		threshold: threshold,
	}
}

// Threshold reports the fast-track threshold currently in effect. Callers
// that cache responses key on it so threshold changes are never masked.
func (p *Pipeline) Threshold() float64 {
	return p.threshold()
}

// WithNotes attaches an optional adjuster-note generator. Notes are
// produced after routing and never change the decision.
func (p *Pipeline) WithNotes(g *llm.NoteGenerator) *Pipeline {
	p.notes = g
	return p
}

// Process runs the full transform over one document's text. It never
// fails: unparseable or partial documents degrade to missing fields, which
// routing turns into a Manual review outcome.
func (p *Pipeline) Process(ctx context.Context, text string) *model.Result {
	record, missing := p.extractor.Extract(text)

	decision := route.Decide(route.Input{
		Record:    record,
		Missing:   missing,
		Threshold: p.threshold(),
	})

	result := &model.Result{
		ExtractedFields:  record,
		MissingFields:    missing,
		RecommendedRoute: decision.Route,
		Reasoning:        decision.Reasoning,
	}

	if p.notes != nil {
		note, err := p.notes.Generate(ctx, result)
		if err != nil {
			// A failed note never fails the triage.
			fmt.Fprintf(os.Stderr, "Warning: adjuster note generation failed: %v\n", err)
		} else if note != nil {
			result.AdjusterNote = note
		}
	}

	return result
}
