package extract

import (
	"regexp"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// labelPattern recognizes one field label. Anchored patterns must match at
// the start of a line; inline patterns may match anywhere, which covers
// form rows that pack several labels on one line ("MAKE: Honda MODEL: ...").
type labelPattern struct {
	re     *regexp.Regexp
	inline bool
}

// fieldSpec is one entry of the declarative extraction table: a field name,
// the label patterns that locate it, and whether its value may span lines.
type fieldSpec struct {
	name      string
	patterns  []labelPattern
	multiline bool
}

func anchored(expr string) labelPattern {
	return labelPattern{re: regexp.MustCompile(`(?i)^\s*` + expr)}
}

func inline(expr string) labelPattern {
	return labelPattern{re: regexp.MustCompile(`(?i)` + expr), inline: true}
}

// fieldTable drives the extractor. Order matches the mandatory-field
// declaration order, so missing-field output is stable.
var fieldTable = []fieldSpec{
	{
		name: model.FieldPolicyNumber,
		patterns: []labelPattern{
			anchored(`policy\s*(?:number|num|no)\b\.?\s*[:#]?\s*(.*)$`),
			anchored(`policy\s*#\s*:?\s*(.*)$`),
			anchored(`policy\s*:\s*(.*)$`),
		},
	},
	{
		name: model.FieldIncidentDate,
		patterns: []labelPattern{
			anchored(`(?:date\s+of\s+loss(?:\s+and\s+time)?|loss\s+date|incident\s+date|date\s+of\s+incident)(?:\s*[:\-]\s*|\s+)(.*)$`),
		},
	},
	{
		name: model.FieldIncidentLocation,
		patterns: []labelPattern{
			anchored(`(?:location\s+of\s+loss|loss\s+location|incident\s+location)(?:\s+street)?(?:\s*[:\-]\s*|\s+)(.*)$`),
			anchored(`location\s*:\s*(.*)$`),
		},
	},
	{
		name:      model.FieldIncidentDescription,
		multiline: true,
		patterns: []labelPattern{
			anchored(`(?:description\s+of\s+(?:accident|loss)|accident\s+description|incident\s+description)(?:\s*[:\-]\s*|\s+)(.*)$`),
			anchored(`description\s*:\s*(.*)$`),
		},
	},
	{
		name: model.FieldClaimantName,
		patterns: []labelPattern{
			anchored(`(?:claimant(?:\s+name)?|name\s+of\s+insured(?:\s*\([^)]*\))?|insured(?:'s)?\s+name|policyholder(?:\s+name)?|driver'?s\s+name(?:\s+and\s+address)?|owner'?s\s+name(?:\s+and\s+address)?)(?:\s*[:\-]\s*|\s+)(.*)$`),
			anchored(`insured\s*:\s*(.*)$`),
		},
	},
	{
		name: model.FieldClaimType,
		patterns: []labelPattern{
			anchored(`(?:claim\s+type|type\s+of\s+claim|loss\s+type)(?:\s*[:\-]\s*|\s+)(.*)$`),
		},
	},
	{
		name: model.FieldVehicleMake,
		patterns: []labelPattern{
			anchored(`(?:vehicle\s+)?make\s*[:\-]\s*(.*)$`),
		},
	},
	{
		name: model.FieldVehicleModel,
		patterns: []labelPattern{
			anchored(`(?:vehicle\s+)?model\s*[:\-]\s*(.*)$`),
			inline(`\bmodel\s*:\s*(.*)$`),
		},
	},
	{
		name: model.FieldVIN,
		patterns: []labelPattern{
			anchored(`v\.?\s*i\.?\s*n\.?\s*(?:number)?\s*[:#\-]?\s*(.*)$`),
			inline(`\bv\.?i\.?n\.?\s*[:#]\s*([A-HJ-NPR-Z0-9]{17})\b`),
		},
	},
	{
		name: model.FieldEstimatedDamage,
		patterns: []labelPattern{
			anchored(`(?:estimated?\s+damage|damage\s+estimate|estimate\s+amount|initial\s+estimate|estimate)\b\s*[:\-]?\s*(.*)$`),
		},
	},
}
