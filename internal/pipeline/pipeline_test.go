package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ppiankov/fnoltriage/internal/model"
)

const completeDoc = `POLICY NUMBER: POL-001
CLAIMANT NAME: Jane Doe
DATE OF LOSS: 01/20/2024
Location: 100 Main St, Austin TX
Description: Rear-ended at stoplight. No injuries.
Claim type: collision
ESTIMATE AMOUNT: $5,000
`

func TestPipeline_FastTrackEndToEnd(t *testing.T) {
	p := New(25000)

	result := p.Process(context.Background(), completeDoc)

	if result.RecommendedRoute != model.RouteFastTrack {
		t.Fatalf("Expected Fast-track, got %s (%s)", result.RecommendedRoute, result.Reasoning)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("Expected no missing fields, got %v", result.MissingFields)
	}
	want := "Estimated damage (5000.0) is below threshold (25000.0); eligible for fast-track."
	if result.Reasoning != want {
		t.Errorf("Expected %q, got %q", want, result.Reasoning)
	}
}

func TestPipeline_TotalityOnArbitraryInput(t *testing.T) {
	p := New(25000)

	for _, input := range []string{
		"",
		"   ",
		"complete garbage with no labels at all",
		"Policy Number: \nDate of loss: not a date\nEstimate: N/A",
	} {
		result := p.Process(context.Background(), input)
		if result == nil {
			t.Fatalf("Input %q: expected a result", input)
		}
		if result.RecommendedRoute != model.RouteManualReview {
			t.Errorf("Input %q: expected Manual review for degraded input, got %s", input, result.RecommendedRoute)
		}
		if result.MissingFields == nil {
			t.Errorf("Input %q: missingFields must serialize as a list, not null", input)
		}
	}
}

func TestPipeline_IdempotentByteIdenticalJSON(t *testing.T) {
	p := New(25000)

	first, err := json.Marshal(p.Process(context.Background(), completeDoc))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(p.Process(context.Background(), completeDoc))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Expected byte-identical output, got\n%s\n%s", first, second)
	}
}

func TestPipeline_MissingFieldEnumeration(t *testing.T) {
	// Claimant name and damage estimate absent; estimated_damage is
	// optional, so only claimant_name is reported and forces review.
	text := `Policy Number: POL-7
Date of loss: 03/10/2024
Location: 100 Congress Ave, Austin TX
Description: Side collision at an intersection.
Claim type: auto
`
	p := New(25000)
	result := p.Process(context.Background(), text)

	if want := []string{model.FieldClaimantName}; !reflect.DeepEqual(result.MissingFields, want) {
		t.Fatalf("Expected missing %v, got %v", want, result.MissingFields)
	}
	if result.RecommendedRoute != model.RouteManualReview {
		t.Errorf("Expected Manual review, got %s", result.RecommendedRoute)
	}
	if !bytes.Contains([]byte(result.Reasoning), []byte(model.FieldClaimantName)) {
		t.Errorf("Expected reasoning to mention claimant_name, got %q", result.Reasoning)
	}
}

func TestPipeline_ThresholdReadPerInvocation(t *testing.T) {
	threshold := 25000.0
	p := NewWithSource(func() float64 { return threshold })

	if r := p.Process(context.Background(), completeDoc); r.RecommendedRoute != model.RouteFastTrack {
		t.Fatalf("Expected Fast-track at threshold 25000, got %s", r.RecommendedRoute)
	}

	// Simulate a runtime configuration override between requests.
	threshold = 4000
	if r := p.Process(context.Background(), completeDoc); r.RecommendedRoute != model.RouteStandard {
		t.Errorf("Expected Standard after threshold lowered, got %s", r.RecommendedRoute)
	}
}

func TestPipeline_ResponseShape(t *testing.T) {
	p := New(25000)

	data, err := json.Marshal(p.Process(context.Background(), completeDoc))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"extractedFields", "missingFields", "recommendedRoute", "reasoning"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Expected response key %q, got %v", key, decoded)
		}
	}

	fields, ok := decoded["extractedFields"].(map[string]any)
	if !ok {
		t.Fatalf("Expected extractedFields object, got %T", decoded["extractedFields"])
	}
	// Absent fields are omitted, never empty strings.
	if v, present := fields["vin"]; present {
		t.Errorf("Expected absent vin to be omitted, got %v", v)
	}
	if fields["estimated_damage"] != 5000.0 {
		t.Errorf("Expected estimated_damage 5000.0, got %v", fields["estimated_damage"])
	}
}
