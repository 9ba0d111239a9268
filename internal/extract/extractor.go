package extract

import (
	"strings"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// Extractor turns raw FNOL document text into an ExtractedRecord. It is
// tolerant of varied formatting and never fails: anything it cannot locate
// degrades to a missing field.
type Extractor struct {
	fields []fieldSpec
}

// NewExtractor creates an extractor backed by the declarative field table.
func NewExtractor() *Extractor {
	return &Extractor{fields: fieldTable}
}

// Extract scans the document and returns the structured record plus the
// mandatory fields that could not be found, in declaration order. Empty or
// whitespace-only input yields a record with every mandatory field missing.
func (e *Extractor) Extract(text string) (model.ExtractedRecord, []string) {
	raw := make(map[string]string, len(e.fields))
	seen := make(map[string]bool, len(e.fields))

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		for idx := range e.fields {
			f := &e.fields[idx]
			if seen[f.name] {
				continue
			}
			val, ok := matchLabel(f, line)
			if !ok {
				continue
			}
			// First occurrence wins, even when the captured value turns
			// out to be empty or unparseable.
			seen[f.name] = true
			if f.multiline {
				val, i = e.captureBlock(val, lines, i)
			}
			raw[f.name] = val
		}
	}

	rec := buildRecord(raw)
	return rec, rec.MissingMandatory()
}

// matchLabel tests a line against the field's label patterns and returns
// the captured value.
func matchLabel(f *fieldSpec, line string) (string, bool) {
	for _, p := range f.patterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// captureBlock extends a multiline value with the following lines until the
// next recognized label or end of document. A label appearing mid-sentence
// does not terminate the block; only label lines do.
func (e *Extractor) captureBlock(first string, lines []string, i int) (string, int) {
	parts := []string{}
	if first != "" {
		parts = append(parts, first)
	}
	for i+1 < len(lines) {
		next := strings.TrimSpace(lines[i+1])
		if next != "" && e.isLabelLine(next) {
			break
		}
		i++
		if next != "" {
			parts = append(parts, next)
		}
	}
	return strings.Join(parts, " "), i
}

// isLabelLine reports whether the line starts with any recognized field
// label. Inline patterns are excluded: label recognition for block
// boundaries anchors to line start.
func (e *Extractor) isLabelLine(line string) bool {
	for idx := range e.fields {
		for _, p := range e.fields[idx].patterns {
			if p.inline {
				continue
			}
			if p.re.MatchString(line) {
				return true
			}
		}
	}
	return false
}

// buildRecord normalizes the raw captures into a typed record. Values that
// fail normalization (bad dates, unparseable amounts, form placeholders)
// are treated as absent.
func buildRecord(raw map[string]string) model.ExtractedRecord {
	rec := model.ExtractedRecord{
		PolicyNumber:        normalizePolicyNumber(raw[model.FieldPolicyNumber]),
		IncidentDate:        normalizeDate(raw[model.FieldIncidentDate]),
		IncidentLocation:    normalizeText(raw[model.FieldIncidentLocation]),
		IncidentDescription: normalizeText(raw[model.FieldIncidentDescription]),
		ClaimantName:        normalizeText(raw[model.FieldClaimantName]),
		ClaimType:           normalizeClaimType(raw[model.FieldClaimType]),
		VehicleMake:         normalizeMake(raw[model.FieldVehicleMake]),
		VehicleModel:        normalizeModel(raw[model.FieldVehicleModel]),
		VIN:                 normalizeVIN(raw[model.FieldVIN]),
	}
	if v, ok := raw[model.FieldEstimatedDamage]; ok {
		rec.EstimatedDamage = normalizeMoney(v)
	}
	return rec
}
