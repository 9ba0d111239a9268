package extract

import (
	"testing"

	"github.com/ppiankov/fnoltriage/internal/model"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01/15/2024", "2024-01-15"},
		{"2024-01-15", "2024-01-15"},
		{"2024/01/15", "2024-01-15"},
		{"01-15-2024", "2024-01-15"},
		{"1/5/2024", "2024-01-05"},
		{"01/15/24", "2024-01-15"},
		{"25/12/2024", "2024-12-25"}, // day-first when month slot exceeds 12
		{"01/15/2024 10:30 AM", "2024-01-15"},
		{"the morning of 01/15/2024", "2024-01-15"},
		{"not a date", ""},
		{"99/99/9999", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeDate(tt.in); got != tt.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeMoney(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$8,500", 8500, true},
		{"12000", 12000, true},
		{"$ 24,999.99", 24999.99, true},
		{"USD 5000.00", 5000, true},
		{"0", 0, true},
		{"to be determined", 0, false},
		{"", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		got := normalizeMoney(tt.in)
		if tt.ok {
			if got == nil {
				t.Errorf("normalizeMoney(%q) = nil, want %v", tt.in, tt.want)
			} else if *got != tt.want {
				t.Errorf("normalizeMoney(%q) = %v, want %v", tt.in, *got, tt.want)
			}
			continue
		}
		if got != nil {
			t.Errorf("normalizeMoney(%q) = %v, want absent", tt.in, *got)
		}
	}
}

func TestNormalizeClaimType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"injury", string(model.ClaimTypeInjury)},
		{"Bodily Injury", string(model.ClaimTypeInjury)},
		{"INJURED", string(model.ClaimTypeInjury)},
		{"injury.", string(model.ClaimTypeInjury)},
		{"collision", string(model.ClaimTypeCollision)},
		{"auto", string(model.ClaimTypeCollision)},
		{"Theft", string(model.ClaimTypeTheft)},
		{"stolen", string(model.ClaimTypeTheft)},
		{"other", string(model.ClaimTypeOther)},
		{"property", string(model.ClaimTypeOther)},
		// Unrecognized values are preserved verbatim.
		{"hailstorm", "hailstorm"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeClaimType(tt.in); got != tt.want {
			t.Errorf("normalizeClaimType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeVIN(t *testing.T) {
	if got := normalizeVIN("1HGBH41JXMN109186"); got != "1HGBH41JXMN109186" {
		t.Errorf("Expected valid VIN accepted, got %q", got)
	}
	if got := normalizeVIN("1hgbh41jxmn109186"); got != "1HGBH41JXMN109186" {
		t.Errorf("Expected VIN uppercased, got %q", got)
	}
	for _, bad := range []string{"SHORT", "1HGBH41JXMN10918O", ""} { // O is not a VIN character
		if got := normalizeVIN(bad); got != "" {
			t.Errorf("normalizeVIN(%q) = %q, want rejected", bad, got)
		}
	}
}

func TestNormalizePolicyNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"POL-2024-887654", "POL-2024-887654"},
		{"POL-123 (renewed)", "POL-123"},
		{"  INS-789  ", "INS-789"},
		{"NUMBER", ""},
		{":", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizePolicyNumber(tt.in); got != tt.want {
			t.Errorf("normalizePolicyNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPlaceholder(t *testing.T) {
	for _, s := range []string{"", "  ", ":", "---", "number", "Name", "N/A"} {
		if !isPlaceholder(s) {
			t.Errorf("Expected %q to be a placeholder", s)
		}
	}
	for _, s := range []string{"John Smith", "POL-123", "4500 Interstate 35"} {
		if isPlaceholder(s) {
			t.Errorf("Expected %q to be real data", s)
		}
	}
}
